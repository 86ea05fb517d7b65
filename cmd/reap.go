package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eleven-am/vpcreaper/pkg/vpcreaper"
)

func NewReapCmd() *cobra.Command {
	var opts vpcreaper.Options

	cmd := &cobra.Command{
		Use:   "reap",
		Short: "Delete the account's default VPC and its dependencies across regions",
		Long: `Tears down the default VPC in every enabled region (or the regions given
with --region): internet gateway, subnets, route tables, network ACLs and
security groups, in that order, then the VPC itself. VPCs with attached
network interfaces are left untouched.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			slog.SetDefault(logger)

			report, err := vpcreaper.Run(cmd.Context(), opts, logger)
			if err != nil {
				return err
			}

			printSummary(os.Stdout, report)
			if report.Failed() {
				return fmt.Errorf("one or more regions failed")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.Profile, "profile", "p", "", "AWS credential profile to use")
	cmd.Flags().StringSliceVar(&opts.Regions, "region", nil, "limit the run to these regions (repeatable; default all)")
	cmd.Flags().StringVar(&opts.RoleARN, "role-arn", "", "IAM role to assume before running")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "log intended deletions without issuing them")
	cmd.Flags().DurationVar(&opts.Timeout, "timeout", 0, "overall run deadline (0 = none)")
	cmd.Flags().IntVar(&opts.Concurrency, "concurrency", 0, "max regions processed in parallel (0 = all at once)")

	return cmd
}

func printSummary(w io.Writer, report vpcreaper.Report) {
	if report.AccountID != "" {
		fmt.Fprintf(w, "account %s\n", report.AccountID)
	}

	regions := make([]string, 0, len(report.Outcomes))
	for region := range report.Outcomes {
		regions = append(regions, region)
	}
	sort.Strings(regions)

	for _, region := range regions {
		o := report.Outcomes[region]
		line := fmt.Sprintf("%-18s %-14s %s", region, o.VpcID, o.Status)
		if detail := resourceDetail(o); detail != "" {
			line += "  (" + detail + ")"
		}
		fmt.Fprintln(w, strings.TrimRight(line, " "))
		if o.Err != "" {
			fmt.Fprintf(w, "%-18s   %s\n", "", o.Err)
		}
		for _, res := range o.Resources {
			for _, e := range res.Errors {
				fmt.Fprintf(w, "%-18s   %s: %s\n", "", res.Kind, e)
			}
		}
	}
}

func resourceDetail(o vpcreaper.Outcome) string {
	var parts []string
	for _, res := range o.Resources {
		if res.Found == 0 {
			continue
		}
		part := fmt.Sprintf("%s %d/%d", res.Kind, res.Deleted, res.Found)
		if res.SkippedProtected > 0 {
			part += fmt.Sprintf(" +%d protected", res.SkippedProtected)
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, ", ")
}
