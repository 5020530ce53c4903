package series

import "math"

// Summary describes one column's values.
type Summary struct {
	Mean  float64
	Std   float64
	Min   float64
	Max   float64
	First float64
	Last  float64
}

// Summarize computes the population statistics of values. An empty slice
// yields the zero Summary.
func Summarize(values []float64) Summary {
	if len(values) == 0 {
		return Summary{}
	}

	s := Summary{
		Min:   values[0],
		Max:   values[0],
		First: values[0],
		Last:  values[len(values)-1],
	}
	var sum float64
	for _, v := range values {
		sum += v
		s.Min = math.Min(s.Min, v)
		s.Max = math.Max(s.Max, v)
	}
	s.Mean = sum / float64(len(values))

	var sq float64
	for _, v := range values {
		d := v - s.Mean
		sq += d * d
	}
	s.Std = math.Sqrt(sq / float64(len(values)))
	return s
}
