package analysis

import "fmt"

// Pivot methods understood by the TradingView scanner. Only Fibonacci is
// exercised by the dashboard today; BuildLadder takes the method as a
// parameter so the others can be adopted without changing the contract.
const (
	MethodFibonacci = "Fibonacci"
	MethodClassic   = "Classic"
	MethodCamarilla = "Camarilla"
	MethodWoodie    = "Woodie"
)

// PivotLadder is the seven-level support/resistance ladder for one pivot
// method. Levels are independent; any subset may be nil when the snapshot
// does not carry them. Missing levels are never interpolated or zero-filled.
type PivotLadder struct {
	Method string
	S3     *float64
	S2     *float64
	S1     *float64
	Pivot  *float64
	R1     *float64
	R2     *float64
	R3     *float64
}

// PivotLevel is one named ladder row, used for ordered rendering.
type PivotLevel struct {
	Name  string
	Value *float64
}

// BuildLadder extracts the ladder for the given method from a snapshot,
// looking up the fixed keys Pivot.M.<method>.<level>. Absent levels stay nil
// so the presentation layer can skip those rows.
func BuildLadder(snap IndicatorSnapshot, method string) PivotLadder {
	return PivotLadder{
		Method: method,
		S3:     snap.Lookup(pivotKey(method, "S3")),
		S2:     snap.Lookup(pivotKey(method, "S2")),
		S1:     snap.Lookup(pivotKey(method, "S1")),
		Pivot:  snap.Lookup(pivotKey(method, "Middle")),
		R1:     snap.Lookup(pivotKey(method, "R1")),
		R2:     snap.Lookup(pivotKey(method, "R2")),
		R3:     snap.Lookup(pivotKey(method, "R3")),
	}
}

// Levels returns the ladder rows ordered from deepest support to highest
// resistance, including absent rows (nil values).
func (l PivotLadder) Levels() []PivotLevel {
	return []PivotLevel{
		{Name: "S3", Value: l.S3},
		{Name: "S2", Value: l.S2},
		{Name: "S1", Value: l.S1},
		{Name: "Pivot", Value: l.Pivot},
		{Name: "R1", Value: l.R1},
		{Name: "R2", Value: l.R2},
		{Name: "R3", Value: l.R3},
	}
}

func pivotKey(method, level string) string {
	return fmt.Sprintf("Pivot.M.%s.%s", method, level)
}
