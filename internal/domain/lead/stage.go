package lead

// Stage is one value in the lead pipeline. The pipeline is linear; the
// absorbing Rejected stage sits outside it and is reachable from any
// non-terminal stage.
type Stage string

const (
	StageNew         Stage = "New Lead"
	StageContacted   Stage = "Contacted"
	StageQuotation   Stage = "Quotation Sent"
	StageNegotiation Stage = "Negotiation"
	StageConfirmed   Stage = "Confirmed"
	StageConverted   Stage = "Converted to Order"
	StageRejected    Stage = "Rejected"
)

// pipeline holds the linear advance order. Rejected is not part of it.
var pipeline = []Stage{
	StageNew,
	StageContacted,
	StageQuotation,
	StageNegotiation,
	StageConfirmed,
	StageConverted,
}

// Stages returns every stage including Rejected.
func Stages() []Stage {
	return append(append([]Stage{}, pipeline...), StageRejected)
}

func (s Stage) Valid() bool {
	for _, st := range Stages() {
		if st == s {
			return true
		}
	}
	return false
}

// Terminal stages have no next step: Converted to Order and Rejected.
func (s Stage) Terminal() bool {
	return s == StageConverted || s == StageRejected
}

// Next returns the following stage in the pipeline. ok is false for
// terminal stages and for Rejected.
func (s Stage) Next() (Stage, bool) {
	for i, st := range pipeline {
		if st == s && i+1 < len(pipeline) {
			return pipeline[i+1], true
		}
	}
	return "", false
}

// CanTransition reports whether from → to is legal on the default path:
// one step forward, or a reject from any non-terminal stage. Arbitrary
// jumps go through the privileged override instead.
func CanTransition(from, to Stage) bool {
	if to == StageRejected {
		return !from.Terminal()
	}
	next, ok := from.Next()
	return ok && next == to
}

// Badge is the presentation row for a stage. Every view reads this one
// table instead of keeping its own status-color conditionals.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Badge string `json:"badge"`
}

var badges = map[Stage]Badge{
	StageNew:         {Label: "New Lead", Color: "blue", Badge: "bg-blue-100 text-blue-800"},
	StageContacted:   {Label: "Contacted", Color: "yellow", Badge: "bg-yellow-100 text-yellow-800"},
	StageQuotation:   {Label: "Quotation Sent", Color: "purple", Badge: "bg-purple-100 text-purple-800"},
	StageNegotiation: {Label: "Negotiation", Color: "orange", Badge: "bg-orange-100 text-orange-800"},
	StageConfirmed:   {Label: "Confirmed", Color: "green", Badge: "bg-green-100 text-green-800"},
	StageConverted:   {Label: "Converted to Order", Color: "emerald", Badge: "bg-emerald-100 text-emerald-800"},
	StageRejected:    {Label: "Rejected", Color: "red", Badge: "bg-red-100 text-red-800"},
}

func (s Stage) Badge() Badge {
	if b, ok := badges[s]; ok {
		return b
	}
	return Badge{Label: string(s), Color: "gray", Badge: "bg-gray-100 text-gray-800"}
}

// Source is the provenance of a lead.
type Source string

const (
	SourceWebsite  Source = "Website"
	SourcePhone    Source = "Phone"
	SourceWhatsApp Source = "WhatsApp"
	SourceWalkIn   Source = "Walk-in"
	SourceReferral Source = "Referral"
)

func (s Source) Valid() bool {
	switch s {
	case SourceWebsite, SourcePhone, SourceWhatsApp, SourceWalkIn, SourceReferral:
		return true
	}
	return false
}
