package sample

// Channel identifies one sensor measurement in the pasteurization process.
type Channel string

// The fixed channel set emitted by the process stream.
const (
	ChanT     Channel = "T"     // product temperature (°C)
	ChanPH    Channel = "pH"    // acidity
	ChanKappa Channel = "Kappa" // consistency coefficient
	ChanMu    Channel = "Mu"    // apparent viscosity
	ChanTau   Channel = "Tau"   // yield stress
	ChanQIn   Channel = "Q_in"  // inlet flow rate
	ChanQOut  Channel = "Q_out" // outlet flow rate
	ChanP     Channel = "P"     // line pressure
	ChanDTdt  Channel = "dTdt"  // temperature rate of change
)

// Channels is the fixed display order for the dashboard grid (row-major, 3x3).
var Channels = []Channel{
	ChanT, ChanPH, ChanKappa,
	ChanMu, ChanTau, ChanQIn,
	ChanQOut, ChanP, ChanDTdt,
}

// Range is a fixed (min, max) display bound for a channel's y-axis.
type Range struct {
	Min float64
	Max float64
}

// Ranges maps each channel to its fixed axis range. Values outside the
// range are clipped visually, never rejected. Never mutated at runtime.
var Ranges = map[Channel]Range{
	ChanT:     {0, 80},
	ChanPH:    {6.0, 7.2},
	ChanKappa: {4.0, 5.5},
	ChanMu:    {1.4, 2.4},
	ChanTau:   {0.0, 1.5},
	ChanQIn:   {0.0, 2.0},
	ChanQOut:  {0.0, 2.0},
	ChanP:     {0.8, 1.6},
	ChanDTdt:  {-1.0, 1.0},
}
