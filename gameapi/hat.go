package gameapi

import "github.com/arcadeio/bindcore/binding"

const (
	hatIncrement = 1.0 / 7
	hatEpsilon   = 0.001
)

var hatBuckets = [8][3]binding.AnalogType{
	{binding.HatUp, binding.AnalogNone, binding.AnalogNone},
	{binding.HatUpRight, binding.HatUp, binding.HatRight},
	{binding.HatRight, binding.AnalogNone, binding.AnalogNone},
	{binding.HatDownRight, binding.HatRight, binding.HatDown},
	{binding.HatDown, binding.AnalogNone, binding.AnalogNone},
	{binding.HatDownLeft, binding.HatDown, binding.HatLeft},
	{binding.HatLeft, binding.AnalogNone, binding.AnalogNone},
	{binding.HatUpLeft, binding.HatLeft, binding.HatUp},
}

var hatNeutral = [3]binding.AnalogType{binding.HatNeutral, binding.AnalogNone, binding.AnalogNone}

// HatSwitchValues decodes a normalized hat switch value into the directions
// it activates. Diagonals also activate both adjacent cardinals; unused
// slots are AnalogNone. Negative values are the neutral position.
func HatSwitchValues(value float64) [3]binding.AnalogType {
	if value < 0 {
		return hatNeutral
	}
	for k, bucket := range hatBuckets {
		if value < float64(k)*hatIncrement+hatEpsilon {
			return bucket
		}
	}
	return hatNeutral
}

func hatMatches(value float64, t binding.AnalogType) bool {
	for _, v := range HatSwitchValues(value) {
		if v == t {
			return true
		}
	}
	return false
}
