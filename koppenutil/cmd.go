/*
Copyright © 2019 the Koppen authors.
This file is part of Koppen.

Koppen is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Koppen is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Koppen.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package koppenutil wraps the koppen classification engine in a
// command line interface: it reads climatology grids from CSV files,
// runs the classification, and writes the labeled grid back out. The
// engine itself does no file I/O.
package koppenutil

import (
	"fmt"
	"os"

	"github.com/lnashier/viper"
	"github.com/sirupsen/logrus"
	"github.com/spatialmodel/koppen"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// Cfg holds configuration information.
var Cfg *viper.Viper

var log = logrus.StandardLogger()

var options []struct {
	name, usage, shorthand string
	defaultVal             interface{}
	flagsets               []*pflag.FlagSet
}

func init() {
	Cfg = viper.New()

	// Options are the configuration options available to Koppen.
	options = []struct {
		name, usage, shorthand string
		defaultVal             interface{}
		flagsets               []*pflag.FlagSet
	}{
		{
			name: "config",
			usage: `
              config specifies the configuration file location.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
		{
			name: "conventions",
			usage: `
              conventions specifies the classification conventions to apply
              (kottek06, peel07, or gfdl). When more than one is given, one
              output grid is written per convention.`,
			shorthand:  "c",
			defaultVal: []string{"peel07"},
			flagsets:   []*pflag.FlagSet{classifyCmd.Flags()},
		},
		{
			name: "TemperatureFile",
			usage: `
              TemperatureFile specifies the monthly near-surface air temperature
              climatology [°C]. It must contain the "[MONTH]" placeholder, which
              is replaced with the two-digit month number to name the twelve
              monthly CSV grids.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{classifyCmd.Flags()},
		},
		{
			name: "PrecipitationFile",
			usage: `
              PrecipitationFile specifies the monthly precipitation climatology
              [mm/month], named like TemperatureFile.`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{classifyCmd.Flags()},
		},
		{
			name: "SummerFlagFile",
			usage: `
              SummerFlagFile specifies an optional CSV grid marking cells where
              "summer" is April–September (nonzero) rather than October–March.
              It is required for hemisphere-aware conventions (kottek06, gfdl).`,
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{classifyCmd.Flags()},
		},
		{
			name: "OutputFile",
			usage: `
              OutputFile specifies the CSV file to write the classified grid to.
              It must contain the "[CONVENTION]" placeholder when more than one
              convention is specified.`,
			shorthand:  "o",
			defaultVal: "",
			flagsets:   []*pflag.FlagSet{classifyCmd.Flags()},
		},
		{
			name: "LogLevel",
			usage: `
              LogLevel sets the logging verbosity (debug, info, warning, or
              error).`,
			defaultVal: "info",
			flagsets:   []*pflag.FlagSet{Root.PersistentFlags()},
		},
	}

	for _, option := range options {
		for _, set := range option.flagsets {
			switch option.defaultVal.(type) {
			case string:
				if option.shorthand == "" {
					set.String(option.name, option.defaultVal.(string), option.usage)
				} else {
					set.StringP(option.name, option.shorthand, option.defaultVal.(string), option.usage)
				}
			case []string:
				if option.shorthand == "" {
					set.StringSlice(option.name, option.defaultVal.([]string), option.usage)
				} else {
					set.StringSliceP(option.name, option.shorthand, option.defaultVal.([]string), option.usage)
				}
			default:
				panic("invalid argument type")
			}
			Cfg.BindPFlag(option.name, set.Lookup(option.name))
		}
	}
}

func init() {
	// Link the commands together.
	Root.AddCommand(versionCmd)
	Root.AddCommand(classifyCmd)
	Root.AddCommand(taxonomyCmd)
}

// setConfig finds and reads in the configuration file, if there is
// one, and sets the logging level.
func setConfig() error {
	if cfgpath := Cfg.GetString("config"); cfgpath != "" {
		Cfg.SetConfigFile(cfgpath)
		if err := Cfg.ReadInConfig(); err != nil {
			return fmt.Errorf("koppen: problem reading configuration file: %v", err)
		}
	}
	level, err := logrus.ParseLevel(Cfg.GetString("LogLevel"))
	if err != nil {
		return fmt.Errorf("koppen: problem parsing LogLevel: %v", err)
	}
	log.SetLevel(level)
	return nil
}

// Root is the main command.
var Root = &cobra.Command{
	Use:   "koppen",
	Short: "A Köppen-Geiger climate classifier.",
	Long: `Koppen classifies gridded climate data into Köppen-Geiger climate
zones from monthly temperature and precipitation climatologies.

Configuration can be changed by using a configuration file (and providing
the path to the file using the --config flag), by using command-line
arguments, or by setting environment variables in the format 'KOPPEN_var'
where 'var' is the name of the variable to be set. Many configuration
variables are additionally allowed to contain environment variables within
them. Refer to https://github.com/spf13/viper for additional configuration
information.`,
	DisableAutoGenTag: true,
	PersistentPreRunE: func(*cobra.Command, []string) error { return setConfig() },
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long:  "version prints the version number of this version of Koppen.",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("Koppen v%s\n", koppen.Version)
	},
	DisableAutoGenTag: true,
}

// classifyCmd is a command that classifies climatology grids.
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify climatology grids.",
	Long: `classify reads monthly temperature and precipitation climatologies,
classifies every grid cell into a Köppen-Geiger climate zone under each
of the requested conventions, and writes one labeled grid per
convention. Cells with missing input data are written as 0.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		conventions, err := checkConventions(Cfg)
		if err != nil {
			return err
		}
		outputFile, err := checkOutputFile(Cfg.GetString("OutputFile"), len(conventions))
		if err != nil {
			return err
		}
		tasPattern, err := checkInputPattern(Cfg.GetString("TemperatureFile"), "TemperatureFile")
		if err != nil {
			return err
		}
		prPattern, err := checkInputPattern(Cfg.GetString("PrecipitationFile"), "PrecipitationFile")
		if err != nil {
			return err
		}

		log.WithField("file", tasPattern).Info("reading temperature climatology")
		tas, err := LoadClimatology(tasPattern, false)
		if err != nil {
			return err
		}
		log.WithField("file", prPattern).Info("reading precipitation climatology")
		pr, err := LoadClimatology(prPattern, true)
		if err != nil {
			return err
		}

		var summerFlag *koppen.Mask
		if f := os.ExpandEnv(Cfg.GetString("SummerFlagFile")); f != "" {
			log.WithField("file", f).Info("reading summer flag grid")
			summerFlag, err = ReadSummerFlag(f)
			if err != nil {
				return err
			}
		}

		for _, conv := range conventions {
			log.WithFields(logrus.Fields{
				"convention": conv.String(),
				"shape":      tas.Annual.Shape,
			}).Info("classifying")
			classes, err := koppen.Classify(conv, tas, pr, summerFlag)
			if err != nil {
				return err
			}
			out := outputFileName(outputFile, conv)
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("koppenutil: creating output file: %w", err)
			}
			if err := WriteClassGrid(f, classes); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
			log.WithField("file", out).Info("wrote classification")
		}
		return nil
	},
	DisableAutoGenTag: true,
}

// taxonomyCmd is a command that prints the class code table.
var taxonomyCmd = &cobra.Command{
	Use:   "taxonomy",
	Short: "Print the classification taxonomy.",
	Long: `taxonomy prints the table of Köppen classes: the integer class code
written to output grids, the Köppen letter code, and the category names
on each classification axis. Code 0 is reserved for masked cells and
does not appear in the table.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Printf("%4s  %-4s  %-12s  %-18s  %s\n", "code", "", "major", "precipitation", "temperature")
		for _, lt := range koppen.Taxonomy() {
			code, _ := koppen.ClassCode(lt.Code)
			cmd.Printf("%4d  %-4s  %-12s  %-18s  %s\n", code, lt.Code, lt.Major, lt.Precip, lt.Temp)
		}
	},
	DisableAutoGenTag: true,
}
