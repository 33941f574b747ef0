// SPDX-License-Identifier: MIT

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvfuzzy/inference"
	"github.com/katalvlaran/lvfuzzy/internal/config"
	"github.com/katalvlaran/lvfuzzy/internal/plotting"
	"github.com/katalvlaran/lvfuzzy/models/restaurant"
)

var (
	errOutOfRange   = errors.New("score out of range")
	errUnknownInput = errors.New("unknown input")
)

var prompts = map[string]string{
	restaurant.Speed:       "Service speed: ",
	restaurant.FoodQuality: "Food quality: ",
	restaurant.Ambience:    "Ambience: ",
}

// knownInputs merges flag and config scores; flags win. Config names outside
// restaurant.Inputs are rejected.
func knownInputs(scores map[string]*scoreFlag, fromConfig map[string]float64) (map[string]float64, error) {
	for name := range fromConfig {
		if !slices.Contains(restaurant.Inputs, name) {
			return nil, fmt.Errorf("inputs.%s: %w (want one of %s)",
				name, errUnknownInput, strings.Join(restaurant.Inputs, ", "))
		}
	}
	in := make(map[string]float64, len(restaurant.Inputs))
	for _, name := range restaurant.Inputs {
		if f := scores[name]; f != nil && f.set {
			in[name] = f.v
			continue
		}
		if x, ok := fromConfig[name]; ok {
			if !restaurant.InRange(x) {
				return nil, fmt.Errorf("%s = %v: %w", name, x, errOutOfRange)
			}
			in[name] = x
		}
	}
	return in, nil
}

// collectInputs completes known inputs by prompting on out and reading in.
func collectInputs(known map[string]float64, in *bufio.Reader, out io.Writer) (map[string]float64, error) {
	header := false
	for _, name := range restaurant.Inputs {
		if _, ok := known[name]; ok {
			continue
		}
		if !header {
			fmt.Fprintf(out, "Enter input scores (%v-%v):\n", restaurant.MinScore, restaurant.MaxScore)
			header = true
		}
		x, err := readScore(in, out, prompts[name])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		known[name] = x
	}
	return known, nil
}

// readScore prompts until a number in the score range is entered.
func readScore(in *bufio.Reader, out io.Writer, prompt string) (float64, error) {
	for {
		fmt.Fprint(out, prompt)
		line, err := in.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return 0, err
		}
		x, perr := strconv.ParseFloat(strings.TrimSpace(line), 64)
		switch {
		case perr != nil:
			fmt.Fprintln(out, "Enter a valid number.")
		case !restaurant.InRange(x):
			fmt.Fprintf(out, "Enter a number between %v and %v.\n", restaurant.MinScore, restaurant.MaxScore)
		default:
			return x, nil
		}
		if err != nil {
			return 0, io.ErrUnexpectedEOF
		}
	}
}

func printResult(w io.Writer, score float64) {
	fmt.Fprintf(w, "\nCustomer happiness: %.2f (%v-%v)\n", score, restaurant.MinScore, restaurant.MaxScore)
	fmt.Fprintf(w, "Category: %s\n", restaurant.Category(score))
}

func runEval(eng *inference.Engine, cfg config.Config, scores map[string]*scoreFlag) {
	known, err := knownInputs(scores, cfg.Inputs)
	if err != nil {
		log.Fatal("invalid input", zap.Error(err))
	}
	inputs, err := collectInputs(known, bufio.NewReader(os.Stdin), os.Stdout)
	if err != nil {
		log.Fatal("failed to read input", zap.Error(err))
	}
	score, err := eng.Compute(inputs, restaurant.Happiness)
	if err != nil {
		log.Fatal("failed to evaluate model", zap.Error(err))
	}
	printResult(os.Stdout, score)
}

func runPlot(eng *inference.Engine, cfg config.Config, scores map[string]*scoreFlag) {
	inputs, err := knownInputs(scores, cfg.Inputs)
	if err != nil {
		log.Fatal("invalid input", zap.Error(err))
	}
	var res *inference.Result
	if len(inputs) == len(restaurant.Inputs) {
		res, err = eng.Evaluate(inputs)
		if err != nil {
			log.Fatal("failed to evaluate model", zap.Error(err))
		}
	} else {
		log.Info("inputs incomplete, plotting membership functions only")
	}
	files, err := plotting.Model(eng, inputs, res, cfg.PlotDir)
	if err != nil {
		log.Fatal("failed to plot model", zap.Error(err))
	}
	for _, f := range files {
		log.Info("wrote plot", zap.String("file", f))
	}
}
