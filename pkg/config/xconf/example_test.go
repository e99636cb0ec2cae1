package xconf_test

import (
	"fmt"

	"github.com/omeyang/xoui/pkg/config/xconf"
)

func ExampleNewFromBytes() {
	cfg, err := xconf.NewFromBytes([]byte("source: oui.csv\nworkers: 4\n"), xconf.FormatYAML)
	if err != nil {
		fmt.Println(err)
		return
	}
	var c struct {
		Source  string `koanf:"source"`
		Workers int    `koanf:"workers"`
	}
	if err := cfg.Unmarshal("", &c); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Source, c.Workers)
	// Output: oui.csv 4
}
