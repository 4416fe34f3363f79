// Package swar models Hindustani notation as nested note sequences.
//
// The tree is three levels deep:
//
//	Blocks  - a phrase group (several renderings of one phrase)
//	Block   - one contiguous phrase
//	Beat    - one rhythmic beat holding 0, 1, 2 or 4 swars
//	Swar    - a note or silence with a fractional beat count
//
// Every non-empty Beat subdivides exactly one beat: one full swar, two
// halves, a grace pair (0.2 + 0.8) or four quarters. An empty Beat is a
// continuation of the swar before it.
//
// Notes are resolved through an explicitly constructed Table:
//
//	t := swar.NewTable()
//	blk, err := swar.Parse("S:R:M:P S - - M P:P -:D :D P/M", t)
//	fmt.Println(blk) // S:R:M:P S - - M P:P -:D :D P/M
//
// Locators address individual swars inside a Blocks tree by index, so
// callers can copy a tree with Clone and rewrite it without aliasing.
package swar
