package xoui_test

import (
	"fmt"

	"github.com/omeyang/xoui/pkg/oui/xoui"
)

func ExampleParsePrefix() {
	inputs := []string{
		"00CDFE",
		"3c5ab4",
		"48:50:73",
		"48:57:dd:01:02:03",
		"F0-D2-F1",
		"0010e0#XYZ",
		"00:03-47@XYZ",
	}
	for _, s := range inputs {
		o, err := xoui.ParsePrefix(s)
		if err != nil {
			fmt.Printf("%q: %v\n", s, err)
			continue
		}
		fmt.Printf("%q -> %s\n", s, o.Key())
	}

	// Output:
	// "00CDFE" -> 00CDFE
	// "3c5ab4" -> 3C5AB4
	// "48:50:73" -> 485073
	// "48:57:dd:01:02:03" -> 4857DD
	// "F0-D2-F1" -> F0D2F1
	// "0010e0#XYZ" -> 0010E0
	// "00:03-47@XYZ" -> 000347
}

func ExampleFromBytes() {
	o, err := xoui.FromBytes([]byte{0x00, 0x04, 0xac, 0xde, 0xad, 0x01})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(o.Key())
	fmt.Println(o.FormatString(xoui.FormatDashUpper))

	// Output:
	// 0004AC
	// 00-04-AC
}
