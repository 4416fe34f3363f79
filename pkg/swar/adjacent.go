package swar

// Window is a swar with its nearest pitched neighbours.
type Window struct {
	Swars    []Swar
	Locators []Locator

	// Center is the index of the located swar in Swars.
	Center int
}

// Len returns the number of swars in w.
func (w Window) Len() int { return len(w.Swars) }

// Prev returns the nearest pitched swar before loc, crossing beat and
// block boundaries and skipping continuations, ties and rests. A loc
// outside bs has no neighbours.
func (bs Blocks) Prev(loc Locator) (Locator, bool) {
	bi, bt := loc.Block, loc.Beat
	if bi < 0 || bi >= len(bs) || bt < 0 || bt >= len(bs[bi].Beats) {
		return Locator{}, false
	}
	if j := bs[bi].Beats[bt].lastPitched(loc.Swar); j >= 0 {
		return Locator{Block: bi, Beat: bt, Swar: j}, true
	}
	for {
		bt--
		for bt < 0 {
			bi--
			if bi < 0 {
				return Locator{}, false
			}
			bt = len(bs[bi].Beats) - 1
		}
		beat := bs[bi].Beats[bt]
		if j := beat.lastPitched(len(beat.Swars)); j >= 0 {
			return Locator{Block: bi, Beat: bt, Swar: j}, true
		}
	}
}

// Next returns the nearest pitched swar after loc.
func (bs Blocks) Next(loc Locator) (Locator, bool) {
	bi, bt := loc.Block, loc.Beat
	if bi < 0 || bi >= len(bs) || bt < 0 || bt >= len(bs[bi].Beats) {
		return Locator{}, false
	}
	if j := bs[bi].Beats[bt].firstPitched(loc.Swar); j >= 0 {
		return Locator{Block: bi, Beat: bt, Swar: j}, true
	}
	for {
		bt++
		for bt >= len(bs[bi].Beats) {
			bi++
			if bi >= len(bs) {
				return Locator{}, false
			}
			bt = 0
		}
		beat := bs[bi].Beats[bt]
		if j := beat.firstPitched(-1); j >= 0 {
			return Locator{Block: bi, Beat: bt, Swar: j}, true
		}
	}
}

// Adjacent returns the window of up to three swars around loc. A
// missing neighbour at a phrase boundary is left out, not padded.
func (bs Blocks) Adjacent(loc Locator) (Window, error) {
	sw, err := bs.At(loc)
	if err != nil {
		return Window{}, err
	}
	var w Window
	if p, ok := bs.Prev(loc); ok {
		s, _ := bs.At(p)
		w.Swars = append(w.Swars, *s)
		w.Locators = append(w.Locators, p)
		w.Center = 1
	}
	w.Swars = append(w.Swars, *sw)
	w.Locators = append(w.Locators, loc)
	if n, ok := bs.Next(loc); ok {
		s, _ := bs.At(n)
		w.Swars = append(w.Swars, *s)
		w.Locators = append(w.Locators, n)
	}
	return w, nil
}
