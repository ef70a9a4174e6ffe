package app

// Name is the binary name, used in usage text and version output.
const Name = "sensocket"
