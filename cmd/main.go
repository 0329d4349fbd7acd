package main

import (
	"chart-lab/contract"
	"chart-lab/domain"
	"chart-lab/format"
	"chart-lab/infrastructure/ephemeris"
	"chart-lab/infrastructure/kepler"
	"chart-lab/internal"
	"chart-lab/lunar"
	"chart-lab/progression"
	"chart-lab/services"
	"chart-lab/validation"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/Netflix/go-env"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

// Exit codes to provide meaningful status to the calling shell.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Chart dump failed: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return exitConfig, fmt.Errorf("config error: %w", err)
	}
	request, err := LoadRequest()
	if err != nil {
		return exitConfig, fmt.Errorf("request error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	houseSystem, err := config.HouseSystem()
	if err != nil {
		return exitConfig, err
	}
	if request.HouseSystem != "" {
		if houseSystem, err = domain.ParseHouseSystem(request.HouseSystem); err != nil {
			return exitConfig, err
		}
	}

	// 2. Engine
	adapter, err := ephemeris.NewAdapter(config.EphemerisConfig(), kepler.NewOracle(), log)
	if err != nil {
		return exitConfig, err
	}
	service := services.NewChartService(log, adapter, progression.NewCalculator(contract.SystemClock{}), config.OracleParallelism)

	// 3. Natal chart
	moment, err := validation.ParseLocalMoment(request.Date, request.Time, request.Timezone)
	if err != nil {
		return exitConfig, err
	}
	location := domain.GeoCoordinates{Latitude: request.Latitude, Longitude: request.Longitude, Name: request.Place}
	opts := domain.ChartOptions{HouseSystem: lo.ToPtr(houseSystem)}

	ctx := context.Background()
	chart, err := service.Compute(ctx, moment, location, opts)
	if err != nil {
		return exitRuntime, err
	}
	printChart(request, "Natal chart", chart)

	// 4. Optional progressed chart
	if request.ProgressTo != "" {
		target, err := validation.ParseMoment(request.ProgressTo)
		if err != nil {
			return exitConfig, err
		}
		progressed, result, err := service.ProgressedChart(ctx, moment, target, location, opts)
		if err != nil {
			return exitRuntime, err
		}
		title := fmt.Sprintf("Progressed chart (age %.3f, %s)", result.AgeInYears, result.ProgressedMoment.Format("2006-01-02 15:04"))
		printChart(request, title, progressed)
	}
	return exitOK, nil
}

func header(request Request, title string) {
	line := fmt.Sprintf("  ====== %s ======", title)
	if request.Colours {
		line = color.New(color.BgBlack, color.FgGreen).Render(line)
	}
	fmt.Println(line)
}

func newTable(columns ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(columns)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}

func printChart(request Request, title string, chart domain.ChartData) {
	header(request, title)
	fmt.Printf("%s  %s  JD %.5f\n",
		chart.Timestamp.Format("2006-01-02 15:04:05 MST"),
		format.FormatCoordinates(chart.Location.Latitude, chart.Location.Longitude),
		chart.JulianDay)

	bodies := newTable("", "Body", "Position", "House", "Speed", "R")
	for _, b := range chart.VisibleBodies() {
		bodies.Append([]string{
			format.PlanetSymbol(string(b.Name)),
			string(b.Name),
			format.FormatDegree(b.Longitude, format.DegreeOptions{IncludeDMS: true}),
			strconv.Itoa(chart.Houses.House(b.Longitude)),
			fmt.Sprintf("%+.4f", b.LongitudeSpeed),
			lo.Ternary(b.Retrograde, "R", ""),
		})
	}
	bodies.Render()

	header(request, format.HouseSystemName(chart.Houses.System)+" houses")
	houses := newTable("House", "Cusp")
	for i, c := range chart.Houses.Cusps {
		houses.Append([]string{strconv.Itoa(i + 1), format.FormatDegree(c, format.DegreeOptions{SignFormat: format.SignAbbreviated})})
	}
	houses.Append([]string{"ASC", format.FormatDegree(chart.Angles.Ascendant)})
	houses.Append([]string{"MC", format.FormatDegree(chart.Angles.Midheaven)})
	houses.Render()

	if phase, ok := lunar.FromChart(chart); ok {
		fmt.Printf("%s %s, %.1f%% illuminated\n", format.MoonPhaseSymbol(string(phase.Name)), phase.Name, phase.Illumination)
	}
}
