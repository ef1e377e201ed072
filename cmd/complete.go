package cmd

import (
	"github.com/etnz/pricedb/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Complete handles shell completion requests for the program name.
//
// It exits the process when the shell asked for completions, and returns
// otherwise.
func Complete(name string) {
	topics, _ := docs.GetAllTopics()
	cmd := &complete.Command{
		Sub: map[string]*complete.Command{
			"run":   {Flags: map[string]complete.Predictor{"n": predict.Nothing}},
			"plan":  {},
			"topic": {Args: predict.Set(append(topics, docs.Readme, "*"))},
			"help":  {Args: predict.Set{"run", "plan", "topic"}},
		},
	}
	cmd.Complete(name)
}
