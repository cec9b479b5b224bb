package domain

import "fmt"

// Term is the holding period class of a lot
type Term int

const (
	ShortTerm Term = iota
	LongTerm
)

func (t Term) String() string {
	switch t {
	case ShortTerm:
		return "short-term"
	case LongTerm:
		return "long-term"
	default:
		return fmt.Sprintf("Term(%d)", int(t))
	}
}

// Reporting tells how the cost basis of a lot was reported to the tax authority.
// It selects the Form 8949 box, together with the Term.
type Reporting int

const (
	// BasisReported is box A (short) or D (long)
	BasisReported Reporting = iota
	// BasisNotReported is box B (short) or E (long)
	BasisNotReported
	// NotOn1099B is box C (short) or F (long)
	NotOn1099B
)

// EntryCode is the TXF "N" record number of a capital-gains detail record
type EntryCode int

// TXF V042 capital gains reference numbers
const (
	UnknownEntryCode    EntryCode = 0
	ShortTermCovered    EntryCode = 321
	ShortTermNoncovered EntryCode = 711
	ShortTermNot1099B   EntryCode = 712
	LongTermCovered     EntryCode = 323
	LongTermNoncovered  EntryCode = 713
	LongTermNot1099B    EntryCode = 714
)

// txfCodeTerms lists the capital-gains codes defined by the TXF standard and the term each one reports
var txfCodeTerms = map[EntryCode]Term{
	ShortTermCovered:    ShortTerm,
	ShortTermNoncovered: ShortTerm,
	ShortTermNot1099B:   ShortTerm,
	LongTermCovered:     LongTerm,
	LongTermNoncovered:  LongTerm,
	LongTermNot1099B:    LongTerm,
}

type entryKey struct {
	term      Term
	reporting Reporting
}

var entryCodes = map[entryKey]EntryCode{
	{ShortTerm, BasisReported}:    ShortTermCovered,
	{ShortTerm, BasisNotReported}: ShortTermNoncovered,
	{ShortTerm, NotOn1099B}:       ShortTermNot1099B,
	{LongTerm, BasisReported}:     LongTermCovered,
	{LongTerm, BasisNotReported}:  LongTermNoncovered,
	{LongTerm, NotOn1099B}:        LongTermNot1099B,
}

// EntryCodeFor returns the TXF entry code for a term and reporting box
func EntryCodeFor(term Term, reporting Reporting) EntryCode {
	code, ok := entryCodes[entryKey{term, reporting}]
	if !ok {
		return UnknownEntryCode
	}
	return code
}

// Term returns the holding period the code reports
func (c EntryCode) Term() Term {
	return txfCodeTerms[c]
}

// IsValid reports whether c is one of the TXF capital-gains codes
func (c EntryCode) IsValid() bool {
	_, ok := txfCodeTerms[c]
	return ok
}

// ValidateEntryCodes checks the term/reporting table against the TXF code set.
// Every pair must resolve to a distinct TXF code reporting the same term.
func ValidateEntryCodes() error {
	seen := make(map[EntryCode]entryKey, len(entryCodes))
	for _, term := range []Term{ShortTerm, LongTerm} {
		for _, reporting := range []Reporting{BasisReported, BasisNotReported, NotOn1099B} {
			key := entryKey{term, reporting}
			code, ok := entryCodes[key]
			if !ok {
				return fmt.Errorf("no entry code for %s reporting %d", term, reporting)
			}
			codeTerm, ok := txfCodeTerms[code]
			if !ok {
				return fmt.Errorf("entry code %d is not a TXF capital gains code", code)
			}
			if codeTerm != term {
				return fmt.Errorf("entry code %d reports %s, mapped from %s", code, codeTerm, term)
			}
			if prev, dup := seen[code]; dup {
				return fmt.Errorf("entry code %d mapped twice (%s/%d and %s/%d)", code, prev.term, prev.reporting, term, reporting)
			}
			seen[code] = key
		}
	}
	return nil
}
