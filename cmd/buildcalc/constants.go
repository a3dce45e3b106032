package main

// noValue is printed when the input is not a usable number. The calculator
// shows no result rather than computing with zero.
const noValue = "no value"

// Valid batch output formats.
var validFormats = []string{"json", "csv", "markdown", "msgpack"}
