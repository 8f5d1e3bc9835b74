package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rcarz/dtresolve"
	"github.com/scylladb/termtables"
	"github.com/sirupsen/logrus"
)

var (
	clock   = ""
	verbose = false
)

func main() {
	flag.StringVar(&clock, "time", "", "time of day, resolved separately from the date argument ie `14:30:00`")
	flag.BoolVar(&verbose, "v", false, "log rejected layouts")
	flag.Parse()

	if len(flag.Args()) == 0 {
		fmt.Println(`Must pass   ./dtresolve "2023-05-01T14:30:00"   or   ./dtresolve -time 14:30:00 2023-05-01`)
		os.Exit(2)
	}
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}

	table := termtables.CreateTable()
	table.AddHeaders("Input", "Format", "Layout", "Parsed (UTC)")

	failed := false
	for _, in := range flag.Args() {
		var (
			f   dtresolve.Format
			ts  time.Time
			err error
		)
		label := in
		if clock != "" {
			label = in + " / " + clock
			ts, f, err = dtresolve.ResolveDateAndTimeFormat(in, clock)
		} else {
			ts, f, err = dtresolve.ResolveDateTimeFormat(in)
		}
		if err != nil {
			failed = true
			color.Red("%s: %v", label, err)
			continue
		}
		table.AddRow(label, f.String(), f.Layout, fmt.Sprintf("%v", ts))
	}

	fmt.Println(table.Render())
	if failed {
		os.Exit(1)
	}
}
