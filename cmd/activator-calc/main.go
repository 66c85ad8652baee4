package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/verskrino-zhy/geopolymer-alkali-activator-calculate/internal/activator"
	"github.com/verskrino-zhy/geopolymer-alkali-activator-calculate/internal/export"
)

func main() {
	var (
		solidMass   = flag.String("solid-mass", "", "Total solid precursor mass A in grams")
		silica      = flag.String("silica-fraction", "", "Silicate SiO2 fraction C (0-1 or 0-100)")
		soda        = flag.String("soda-fraction", "", "Silicate Na2O fraction D (0-1 or 0-100)")
		modulus     = flag.String("target-modulus", "", "Target alkali modulus O")
		alkali      = flag.String("target-alkali", "", "Target alkali-equivalent ratio Q")
		solidLiquid = flag.String("target-solid-liquid", "", "Target solid/liquid mass ratio R")
		demo        = flag.Bool("demo", false, "Fill the example base and target parameters")
		xlsxPath    = flag.String("xlsx", "", "Write the batch-sheet table to this .xlsx path")
		csvPath     = flag.String("csv", "", "Write the batch-sheet table to this .csv path")
		sqlitePath  = flag.String("sqlite", "", "Write the batch-sheet table to this SQLite database path")
	)
	flag.Parse()

	raw := activator.RawFields{
		SolidMass:         *solidMass,
		SilicaFraction:    *silica,
		SodaFraction:      *soda,
		TargetModulus:     *modulus,
		TargetAlkali:      *alkali,
		TargetSolidLiquid: *solidLiquid,
	}
	if *demo {
		raw = activator.RawFields{
			SolidMass:         "200",
			SilicaFraction:    "30",
			SodaFraction:      "13.5",
			TargetModulus:     "1.5",
			TargetAlkali:      "0.15",
			TargetSolidLiquid: "0.6",
		}
	}

	in, err := activator.Validate(raw)
	if err != nil {
		log.Fatalf("invalid inputs: %v", err)
	}
	res, err := activator.Solve(in)
	if err != nil {
		log.Fatalf("infeasible targets: %v", err)
	}

	printResults(in, res)

	tab := export.BuildTable(in, res)
	if *xlsxPath != "" {
		if err := writeFile(*xlsxPath, func(f *os.File) error { return export.WriteExcel(tab, f) }); err != nil {
			log.Fatalf("export failed: %v", err)
		}
		log.Printf("wrote %s", *xlsxPath)
	}
	if *csvPath != "" {
		if err := writeFile(*csvPath, func(f *os.File) error { return export.WriteCSV(tab, f) }); err != nil {
			log.Fatalf("export failed: %v", err)
		}
		log.Printf("wrote %s", *csvPath)
	}
	if *sqlitePath != "" {
		if err := export.WriteSQLite(tab, *sqlitePath); err != nil {
			log.Fatalf("export failed: %v", err)
		}
		log.Printf("wrote %s", *sqlitePath)
	}
}

func writeFile(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func printResults(in activator.Inputs, res activator.Results) {
	fmt.Println("Inputs")
	fmt.Printf("  Solid precursor mass:            %s g\n", activator.FormatMass(in.SolidMass))
	fmt.Printf("  Silicate SiO2 fraction:          %s %%\n", activator.FormatPercent(in.SilicaFraction))
	fmt.Printf("  Silicate Na2O fraction:          %s %%\n", activator.FormatPercent(in.SodaFraction))
	fmt.Printf("  Target modulus / alkali / S-L:   %s / %s / %s\n",
		activator.FormatRatio(in.TargetModulus), activator.FormatRatio(in.TargetAlkali), activator.FormatRatio(in.TargetSolidLiquid))
	fmt.Println("Key results")
	fmt.Printf("  Silicate solution to add:        %s g\n", activator.FormatMass(res.SilicateMass))
	fmt.Printf("  Sodium hydroxide to add:         %s g\n", activator.FormatMass(res.HydroxideMass))
	fmt.Printf("  Water to add:                    %s g\n", activator.FormatMass(res.WaterMass))
	fmt.Printf("  Alkali modulus (back-calc):      %s\n", activator.FormatRatio(res.ModulusBack))
	fmt.Printf("  Alkali-equivalent (back-calc):   %s\n", activator.FormatRatio(res.FinalAlkali))
	fmt.Printf("  Solid/liquid ratio (back-calc):  %s\n", activator.FormatRatio(res.SolidLiquidBack))
	fmt.Println("Process results")
	fmt.Printf("  New liquid SiO2 fraction:        %s %%\n", activator.FormatPercent(res.SilicaFractionNew))
	fmt.Printf("  New liquid Na2O fraction:        %s %%\n", activator.FormatPercent(res.SodaFractionNew))
	fmt.Printf("  New liquid density:              %s g/cm3\n", activator.FormatDensity(res.LiquidDensity))
	fmt.Printf("  New liquid mass:                 %s g\n", activator.FormatMass(res.LiquidMass))
	fmt.Printf("  Silicate modulus (verification): %s\n", activator.FormatRatio(res.SilicateModulus))
	fmt.Printf("  SiO2 mass in silicate:           %s g\n", activator.FormatMass(res.SilicaInSilicate))
	fmt.Printf("  Na2O mass in silicate:           %s g\n", activator.FormatMass(res.SodaInSilicate))
	fmt.Printf("  Na2O equivalent from NaOH:       %s g\n", activator.FormatMass(res.SodaFromHydroxide))
	fmt.Printf("  Initial alkali-equivalent:       %s\n", activator.FormatRatio(res.InitialAlkali))
}
