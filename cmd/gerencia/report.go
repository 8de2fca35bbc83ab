package main

import (
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/ougirez/gerencia/internal/client"
	"github.com/ougirez/gerencia/internal/dashboard"
)

var reportFlags struct {
	departamento string
	citrep       string
	segmento     string
	valor        string
}

var reportCmd = &cobra.Command{
	Use:       "report {territorio|circunscripciones|pmo|kpis}",
	Short:     "Print a dashboard page built from the API as JSON",
	Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"territorio", "circunscripciones", "pmo", "kpis"},
	RunE: func(cmd *cobra.Command, args []string) error {
		loc, err := time.LoadLocation(cfg.Dashboard.Timezone)
		if err != nil {
			return fmt.Errorf("time.LoadLocation: %w", err)
		}

		d := dashboard.New(client.New(cfg.Dashboard.APIURL, nil), dashboard.Settings{
			Units:      cfg.Dashboard.CoverageUnits,
			CapPerUnit: cfg.Dashboard.CoverageCap,
			TopN:       cfg.Dashboard.TopN,
			Location:   loc,
		})

		ctx := cmd.Context()
		var page any
		switch args[0] {
		case "territorio":
			page, _ = d.LoadTerritorio(ctx, reportFlags.departamento)
		case "circunscripciones":
			page, _ = d.LoadCircunscripciones(ctx, reportFlags.citrep)
		case "pmo":
			page, _ = d.LoadPMO(ctx, dashboard.Filter{Segment: reportFlags.segmento, Value: reportFlags.valor})
		case "kpis":
			page, _ = d.LoadKPIs(ctx)
		}

		out, err := sonic.ConfigStd.MarshalIndent(page, "", "  ")
		if err != nil {
			return fmt.Errorf("sonic.MarshalIndent: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportFlags.departamento, "departamento", "", "focus the territorial page on one department")
	reportCmd.Flags().StringVar(&reportFlags.citrep, "citrep", "", "focus the circumscription page on one code")
	reportCmd.Flags().StringVar(&reportFlags.segmento, "segmento", "", "deliverable filter segment, e.g. estado-plazo")
	reportCmd.Flags().StringVar(&reportFlags.valor, "valor", "", "deliverable filter value")
}
