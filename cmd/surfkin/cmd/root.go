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

	"github.com/spatialmodel/surfkin"
	"github.com/spf13/cobra"
)

var (
	configFile string

	// Config holds the global configuration data.
	Config *ConfigData
)

// RootCmd is the main command.
var RootCmd = &cobra.Command{
	Use:   "surfkin",
	Short: "A surface reaction rate-constant calculator.",
	Long: `A calculator for heterogeneous reaction rate constants with
coverage, electrochemical, and sticking corrections.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return Startup(configFile)
	},
}

// Startup reads the configuration file.
func Startup(configFile string) error {
	var err error
	Config, err = ReadConfigFile(configFile)
	return err
}

func init() {
	RootCmd.AddCommand(versionCmd)

	RootCmd.PersistentFlags().StringVar(&configFile, "config", "./surfkin.toml", "configuration file location")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of SurfKin",

	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("SurfKin v%s\n", surfkin.Version)
	},
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
}
