/*
Copyright © 2018 the SurfKin authors.
This file is part of SurfKin.

SurfKin is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

SurfKin is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with SurfKin.  If not, see <http://www.gnu.org/licenses/>.
*/

package cmd

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/ctessum/sparse"
	"github.com/spatialmodel/surfkin/mech"
	"github.com/spf13/cobra"
)

func init() {
	RootCmd.AddCommand(evalCmd)
	RootCmd.AddCommand(paramsCmd)
}

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate rate constants over a temperature sweep",
	Long: `eval loads the mechanism given in the configuration file and
evaluates every reaction's rate constant at each temperature in the
configured sweep, writing the resulting table to the output file or to
standard output.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := loadModel(Config)
		if err != nil {
			return err
		}
		table, temps := sweep(model, Config)
		w, closer, err := outputWriter(Config.OutputFile)
		if err != nil {
			return err
		}
		defer closer()
		return writeTable(w, model, table, temps)
	},
}

var paramsCmd = &cobra.Command{
	Use:   "params",
	Short: "Report effective Arrhenius parameters for each reaction",
	Long: `params loads the mechanism given in the configuration file,
refreshes it at the first temperature of the configured sweep, and
reports each reaction's coverage-modified pre-exponential factor and
activation energy.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		model, err := loadModel(Config)
		if err != nil {
			return err
		}
		b := model.Batch()
		b.Refresh(Config.TemperatureStart)

		w, closer, err := outputWriter(Config.OutputFile)
		if err != nil {
			return err
		}
		defer closer()
		tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
		fmt.Fprintln(tw, "Reaction\tType\tA_eff\tEa_eff [J/kmol]")
		for _, e := range model.Reactions {
			fmt.Fprintf(tw, "%s\t%s\t%.6g\t%.6g\n", e.Reaction.Equation,
				e.Rate.Type(), e.Rate.EffectivePreExponentialFactor(),
				e.Rate.EffectiveActivationEnergy())
		}
		return tw.Flush()
	},
}

// loadModel loads the configured mechanism and applies the
// configuration's potential and coverage overrides.
func loadModel(config *ConfigData) (*mech.Model, error) {
	model, err := mech.Load(config.MechanismFile)
	if err != nil {
		return nil, err
	}
	for phase, v := range config.ElectricPotentials {
		if err := model.Mechanism.SetElectricPotential(phase, v); err != nil {
			return nil, err
		}
	}
	if len(config.Coverages) > 0 {
		if err := model.Mechanism.SetCoverages(config.Coverages); err != nil {
			return nil, err
		}
	}
	return model, nil
}

// sweep evaluates every reaction at each temperature of the configured
// sweep, returning a (reactions × temperatures) table.
func sweep(model *mech.Model, config *ConfigData) (*sparse.DenseArray, []float64) {
	n := config.TemperaturePoints
	temps := make([]float64, n)
	dT := 0.0
	if n > 1 {
		dT = (config.TemperatureStop - config.TemperatureStart) / float64(n-1)
	}
	for j := range temps {
		temps[j] = config.TemperatureStart + float64(j)*dT
	}

	table := sparse.ZerosDense(len(model.Reactions), n)
	b := model.Batch()
	out := make([]float64, b.Len())
	for j, T := range temps {
		b.Refresh(T)
		b.Eval(out)
		for i, k := range out {
			table.Set(k, i, j)
		}
	}
	return table, temps
}

func writeTable(w io.Writer, model *mech.Model, table *sparse.DenseArray, temps []float64) error {
	tw := tabwriter.NewWriter(w, 0, 8, 1, ' ', 0)
	fmt.Fprint(tw, "Reaction")
	for _, T := range temps {
		fmt.Fprintf(tw, "\t%.1f K", T)
	}
	fmt.Fprintln(tw)
	for i, e := range model.Reactions {
		fmt.Fprint(tw, e.Reaction.Equation)
		for j := range temps {
			fmt.Fprintf(tw, "\t%.6g", table.Get(i, j))
		}
		fmt.Fprintln(tw)
	}
	return tw.Flush()
}

func outputWriter(path string) (io.Writer, func() error, error) {
	if path == "" {
		return os.Stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("problem creating output file: %v", err)
	}
	return f, f.Close, nil
}
