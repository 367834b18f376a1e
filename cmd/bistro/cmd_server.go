package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/bistro/app/repositories"
	"github.com/shashiranjanraj/bistro/app/routes"
	"github.com/shashiranjanraj/bistro/app/services"
	"github.com/shashiranjanraj/bistro/config"
	"github.com/shashiranjanraj/bistro/internal/server"
	"github.com/shashiranjanraj/bistro/pkg/payment"
	"github.com/shashiranjanraj/bistro/pkg/router"
)

// bistro serve — start the HTTP server.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		return server.Start()
	},
}

// bistro route:list — print all registered routes.
var routeListCmd = &cobra.Command{
	Use:   "route:list",
	Short: "List all registered named routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(); err != nil {
			return err
		}

		// Routes only; nothing here touches the database.
		paymentService := services.NewPaymentService(
			repositories.NewPaymentRepository(),
			repositories.NewCartRepository(),
			payment.NewStripeGateway(config.Currency()),
			nil,
		)
		r := router.New()
		routes.RegisterAPI(r, paymentService)

		infos := r.Routes()
		sort.Slice(infos, func(i, j int) bool {
			if infos[i].Path != infos[j].Path {
				return infos[i].Path < infos[j].Path
			}
			return infos[i].Method < infos[j].Method
		})

		w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
		fmt.Fprintln(w, "METHOD\tPATH\tNAME")
		fmt.Fprintln(w, "------\t----\t----")
		for _, ri := range infos {
			fmt.Fprintf(w, "%s\t%s\t%s\n", ri.Method, ri.Path, ri.Name)
		}
		return w.Flush()
	},
}
