// Package mail defines the contracts for sending email messages.
//
// Use cases work with the Mail interface and the Message payload so the
// delivery mechanism can be swapped. The Log implementation stands in for a
// real transport: it writes each outgoing message as a line of text.
package mail
