// Package chip8 implements the CHIP-8 virtual machine core.
//
// # Machine
//
// The machine has 4KB of memory, 16 8-bit registers V0-VF, a 16 bit index
// register I, a 16 entry call stack and two 8-bit timers that count down at
// 60 Hz. VF doubles as the flag register, flag results are always written
// after the destination register so that instructions targeting VF end up
// with the flag value.
//
// # Execution
//
// Interpreter.Step performs one fetch-decode-execute cycle. The program
// counter is advanced past the fetched instruction before it is executed,
// jumps, calls, returns and skips then overwrite or advance it further.
// Unsupported opcodes and call stack misuse are logged and never stop the
// machine.
//
// # Collaborators
//
// Drawing and input go through the Display and Keypad interfaces. The
// instruction clock and the 60 Hz timer clock are driven from outside, see
// Interpreter.Step and Interpreter.TickTimers.
package chip8
