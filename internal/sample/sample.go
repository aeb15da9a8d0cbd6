// Package sample defines the sensor data model: individual samples decoded
// from the process stream and the bounded sliding window retained for display.
package sample

import "encoding/json"

// Sample is one decoded stream event. Pointer fields stay nil when the
// payload omits that channel, so partial events round-trip without
// inventing zeroes.
type Sample struct {
	Timestamp *float64 `json:"timestamp,omitempty"`
	T         *float64 `json:"T,omitempty"`
	PH        *float64 `json:"pH,omitempty"`
	Kappa     *float64 `json:"Kappa,omitempty"`
	Mu        *float64 `json:"Mu,omitempty"`
	Tau       *float64 `json:"Tau,omitempty"`
	QIn       *float64 `json:"Q_in,omitempty"`
	QOut      *float64 `json:"Q_out,omitempty"`
	P         *float64 `json:"P,omitempty"`
	DTdt      *float64 `json:"dTdt,omitempty"`
}

// Decode parses one JSON event payload into a Sample.
// Unknown fields are ignored; known fields that are absent stay nil.
func Decode(payload []byte) (Sample, error) {
	var s Sample
	if err := json.Unmarshal(payload, &s); err != nil {
		return Sample{}, err
	}
	return s, nil
}

// Value returns the sample's reading for the given channel, or nil if the
// channel was absent from the payload.
func (s Sample) Value(ch Channel) *float64 {
	switch ch {
	case ChanT:
		return s.T
	case ChanPH:
		return s.PH
	case ChanKappa:
		return s.Kappa
	case ChanMu:
		return s.Mu
	case ChanTau:
		return s.Tau
	case ChanQIn:
		return s.QIn
	case ChanQOut:
		return s.QOut
	case ChanP:
		return s.P
	case ChanDTdt:
		return s.DTdt
	default:
		return nil
	}
}
