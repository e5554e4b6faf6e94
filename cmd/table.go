package cmd

import (
	"bytes"
	"github.com/markusressel/dim2go/cmd/global"
	"github.com/mgutz/ansi"
	"github.com/tomlazar/table"
)

func tableConfig() *table.Config {
	return &table.Config{
		ShowIndex:       false,
		Color:           !global.NoColor,
		AlternateColors: true,
		TitleColorCode:  ansi.ColorCode("white+buf"),
		AltColorCodes: []string{
			ansi.ColorCode("white"),
			ansi.ColorCode("white:236"),
		},
	}
}

func renderTable(tab table.Table) (string, error) {
	var buf bytes.Buffer
	if err := tab.WriteTable(&buf, tableConfig()); err != nil {
		return "", err
	}
	return buf.String(), nil
}
