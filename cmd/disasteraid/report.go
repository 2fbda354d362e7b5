// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/katalvlaran/disasteraid/beneficiary"
	"github.com/katalvlaran/disasteraid/routing"
)

const rule = "--------------------------------------------------------"

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 1, ' ', 0)
}

func printRanked(w io.Writer, ranked []beneficiary.Person) error {
	fmt.Fprintln(w, "--- Prioritized List of Beneficiaries (Sorted) ---")
	tw := newTable(w)
	fmt.Fprintln(tw, "Rank\t| Name\t| Age\t| Gender\t| City")
	for i, p := range ranked {
		fmt.Fprintf(tw, "%d\t| %s\t| %d\t| %s\t| %s\n", i+1, p.Name, p.Age, p.Gender, p.City)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w, rule)
	_, err := fmt.Fprintln(w, "Time Complexity for Merge Sort: O(n log n)")

	return err
}

func printComparison(w io.Writer, src, dst string, routes []routing.Route) error {
	fmt.Fprintf(w, "\n--- Shortest Path Results (%s to %s) ---\n", src, dst)
	for _, r := range routes {
		fmt.Fprintf(w, "\n%s:\n", r.Algorithm.Title())
		if r.Reachable {
			fmt.Fprintf(w, "Shortest distance: %s\n", r.Distance)
			fmt.Fprintf(w, "Path: %s\n", strings.Join(r.Path, " -> "))
		} else {
			fmt.Fprintln(w, r.String())
		}
		if _, err := fmt.Fprintf(w, "Time Complexity: %s\n", r.Algorithm.Complexity()); err != nil {
			return err
		}
	}

	return nil
}

func printRoutes(w io.Writer, plan *routing.Plan) error {
	fmt.Fprintf(w, "\n--- Routes from %s to each Beneficiary (%s) ---\n", plan.Source, plan.Algorithm.Title())
	tw := newTable(w)
	fmt.Fprintln(tw, "Beneficiary Name\t| Route Information")
	for _, a := range plan.Assignments {
		fmt.Fprintf(tw, "%s\t| %s\n", a.Person.Name, a)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, rule)

	return err
}
