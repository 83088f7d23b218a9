package games

import "fmt"

const (
	DanceDanceRevolution = "Dance Dance Revolution"
	Nostalgia            = "Nostalgia"
	GitaDora             = "GitaDora"
	DanceRush            = "DANCERUSH"
	SoundVoltex          = "Sound Voltex"
	BeatmaniaIIDX        = "Beatmania IIDX"
)

func init() {
	MustRegister(Definition{
		Name: DanceDanceRevolution,
		Buttons: concat(
			[]string{"Service", "Test", "Coin Mech"},
			prefixed("P1 ", "Start", "Panel Up", "Panel Down", "Panel Left", "Panel Right", "Menu Up", "Menu Down", "Menu Left", "Menu Right"),
			prefixed("P2 ", "Start", "Panel Up", "Panel Down", "Panel Left", "Panel Right", "Menu Up", "Menu Down", "Menu Left", "Menu Right"),
		),
		Lights: concat(
			prefixed("P1 Foot ", "Left", "Up", "Right", "Down"),
			prefixed("P2 Foot ", "Left", "Up", "Right", "Down"),
			[]string{
				"Spot Red", "Spot Blue", "Top Spot Red", "Top Spot Blue",
				"P1 Halogen Upper", "P1 Halogen Lower", "P2 Halogen Upper", "P2 Halogen Lower",
				"P1 Button", "P2 Button", "Neon",
			},
			prefixed("HD P1 ", "Start", "Menu Left-Right", "Menu Up-Down"),
			prefixed("HD P2 ", "Start", "Menu Left-Right", "Menu Up-Down"),
			prefixed("HD P1 Speaker ", "F R", "F G", "F B", "W R", "W G", "W B"),
			prefixed("HD P2 Speaker ", "F R", "F G", "F B", "W R", "W G", "W B"),
		),
	})

	keys := numbered("Key %d", 28)
	var keyLights []string
	for _, k := range keys {
		keyLights = append(keyLights, rgb(k)...)
	}
	MustRegister(Definition{
		Name:    Nostalgia,
		Buttons: concat([]string{"Service", "Test", "Coin Mech"}, keys),
		Analogs: keys,
		Lights:  concat(rgb("Title"), rgb("Bottom"), keyLights),
	})

	guitar := func(p string) []string {
		return prefixed("Guitar "+p+" ",
			"Start", "Up", "Down", "Left", "Right", "Help",
			"Effect 1", "Effect 2", "Effect 3", "Effect Pedal", "Button Extra 1", "Button Extra 2",
			"Pick Up", "Pick Down", "R", "G", "B", "Y", "P",
			"Knob Up", "Knob Down", "Wail Up", "Wail Down")
	}
	MustRegister(Definition{
		Name: GitaDora,
		Buttons: concat(
			[]string{"Service", "Test", "Coin"},
			guitar("P1"),
			guitar("P2"),
			prefixed("Drum ",
				"Start", "Up", "Down", "Left", "Right", "Help", "Button Extra 1", "Button Extra 2",
				"Hi-Hat", "Hi-Hat Closed", "Hi-Hat Half-Open", "Snare", "Hi-Tom", "Low-Tom",
				"Right Cymbal", "Bass Pedal", "Left Cymbal", "Left Pedal", "Floor Tom"),
		),
		Analogs: concat(
			prefixed("Guitar P1 ", "Wail X", "Wail Y", "Wail Z", "Knob"),
			prefixed("Guitar P2 ", "Wail X", "Wail Y", "Wail Z", "Knob"),
		),
		Lights: []string{"Guitar P1 Motor", "Guitar P2 Motor"},
	})

	MustRegister(Definition{
		Name: DanceRush,
		Buttons: concat(
			[]string{"Service", "Test", "Coin Mech"},
			prefixed("P1 ", "Start", "Up", "Down", "Left", "Right"),
			prefixed("P2 ", "Start", "Up", "Down", "Left", "Right"),
		),
	})

	MustRegister(Definition{
		Name: SoundVoltex,
		Buttons: []string{
			"Service", "Test", "Coin Mech", "Start",
			"BT-A", "BT-B", "BT-C", "BT-D", "FX-L", "FX-R", "Headphone",
		},
		// F1, F2, F3, Enter, A, S, K, L, C, M, H
		ButtonDefaults: []uint16{0x70, 0x71, 0x72, 0x0D, 0x41, 0x53, 0x4B, 0x4C, 0x43, 0x4D, 0x48},
		Analogs:        []string{"VOL-L", "VOL-R"},
		Lights: concat(
			[]string{"BT-A", "BT-B", "BT-C", "BT-D", "FX-L", "FX-R", "Start", "Generator B", "Woofer"},
			rgb("Wing Left Up"), rgb("Wing Right Up"), rgb("Wing Left Low"), rgb("Wing Right Low"),
			rgb("Control Panel"),
		),
	})

	MustRegister(Definition{
		Name: BeatmaniaIIDX,
		Buttons: concat(
			[]string{"Service", "Test", "Coin Mech"},
			numbered("P1 %d", 7),
			prefixed("P1 TT ", "+", "-", "+/-"),
			[]string{"P1 Start"},
			numbered("P2 %d", 7),
			prefixed("P2 TT ", "+", "-", "+/-"),
			[]string{"P2 Start"},
			[]string{"Effect", "VEFX"},
		),
		Analogs: []string{"Turntable P1", "Turntable P2", "VEFX", "Low-EQ", "Hi-EQ", "Filter", "Play Volume"},
		Lights: concat(
			numbered("P1 %d", 7),
			numbered("P2 %d", 7),
			[]string{"P1 Start", "P2 Start", "VEFX", "Effect", "Spotlight 1", "Spotlight 2", "Neon Lamp"},
		),
	})
}

func concat(parts ...[]string) []string {
	var out []string
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

func prefixed(prefix string, names ...string) []string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = prefix + n
	}
	return out
}

func numbered(format string, n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf(format, i+1)
	}
	return out
}

func rgb(name string) []string {
	return []string{name + " R", name + " G", name + " B"}
}
