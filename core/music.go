package core

// InstrumentType identifies the synthesizer voice a note is rendered with
type InstrumentType int

const (
	InstrBass InstrumentType = iota
	InstrHihat
	InstrSnare
	InstrChord
	InstrLead
	InstrArp
	InstrumentCount
)

func (i InstrumentType) String() string {
	names := [...]string{"bass", "hihat", "snare", "chord", "lead", "arp"}
	if i >= 0 && int(i) < len(names) {
		return names[i]
	}
	return "unknown"
}

// IsDrum returns true for unpitched percussion
func (i InstrumentType) IsDrum() bool {
	return i == InstrHihat || i == InstrSnare
}

// TrackID indexes the built-in track list
type TrackID int

const (
	TrackLofiSpace TrackID = iota
	TrackTakeOnMe
	TrackBillieJean
	TrackCount
)
