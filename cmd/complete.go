package cmd

import (
	"flag"

	"github.com/etnz/budgify"
	"github.com/etnz/budgify/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion describes the command line for shell completion.
//
// Global flags are read from global, each command's flags from its SetFlags.
func Completion(global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictFlags(global),
	}
	for _, cmd := range commands() {
		f := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(f)
		sub := &complete.Command{Flags: predictFlags(f)}
		if cmd.Name() == "topic" {
			sub.Args = predict.Set(docs.List())
		}
		root.Sub[cmd.Name()] = sub
	}
	root.Sub["help"] = &complete.Command{Args: predict.Set(names())}
	return root
}

func names() []string {
	var names []string
	for _, cmd := range commands() {
		names = append(names, cmd.Name())
	}
	return names
}

// predictFlags maps each flag of f to the values it accepts.
func predictFlags(f *flag.FlagSet) map[string]complete.Predictor {
	flags := make(map[string]complete.Predictor)
	f.VisitAll(func(fl *flag.Flag) {
		flags[fl.Name] = predictFlag(fl)
	})
	return flags
}

func predictFlag(fl *flag.Flag) complete.Predictor {
	if b, ok := fl.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
		return predict.Nothing
	}
	switch fl.Name {
	case "c":
		values := []string{string(budgify.AllCategories)}
		for _, c := range budgify.Categories() {
			values = append(values, string(c))
		}
		return predict.Set(values)
	case "pay":
		var values []string
		for _, p := range budgify.PaymentMethods() {
			values = append(values, string(p))
		}
		return predict.Set(values)
	case "p":
		return predict.Set{"day", "week", "month", "quarter", "year"}
	case "currency":
		return predict.Set{"USD", "EUR", "GBP", "JPY", "CHF", "CAD"}
	case "ledger-file", "users-file", "o":
		return predict.Files("*.csv")
	case "config":
		return predict.Files("*.toml")
	default:
		return predict.Something
	}
}
