package cmd

import (
	"flag"

	"github.com/etnz/tvm"
	"github.com/etnz/tvm/date"
	"github.com/etnz/tvm/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors complete the flag values that have a closed set of choices.
func flagPredictors() map[string]complete.Predictor {
	var modes, rolls, counts, periods predict.Set
	for _, m := range tvm.RoundingModes {
		modes = append(modes, m.String())
	}
	for r := date.Unadjusted; r <= date.ModifiedPreceding; r++ {
		rolls = append(rolls, r.String())
	}
	for c := date.Actual360; c <= date.Thirty360E; c++ {
		counts = append(counts, c.String())
	}
	for p := date.Daily; p <= date.Yearly; p++ {
		periods = append(periods, p.String())
	}
	return map[string]complete.Predictor{
		"rounding": modes,
		"roll":     rolls,
		"daycount": counts,
		"every":    periods,
		"holidays": predict.Files("*ml"),
	}
}

// Completion returns the shell completion of the tvm command line.
//
// The main package calls its Complete method first: it completes and exits
// when invoked by the shell, and does nothing otherwise.
func Completion() *complete.Command {
	predictors := flagPredictors()
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{},
	}
	flag.CommandLine.VisitAll(func(f *flag.Flag) {
		root.Flags[f.Name] = predict.Nothing
	})
	for _, cmds := range Commands() {
		for _, cmd := range cmds {
			fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
			cmd.SetFlags(fs)
			sub := &complete.Command{Flags: map[string]complete.Predictor{}}
			fs.VisitAll(func(f *flag.Flag) {
				if p, ok := predictors[f.Name]; ok {
					sub.Flags[f.Name] = p
				} else {
					sub.Flags[f.Name] = predict.Something
				}
			})
			if cmd.Name() == "topic" {
				topics, err := docs.GetAllTopics()
				if err == nil {
					sub.Args = predict.Set(topics)
				}
			}
			root.Sub[cmd.Name()] = sub
		}
	}
	// help is registered by the commander.
	root.Sub["help"] = &complete.Command{}
	return root
}
