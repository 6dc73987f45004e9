package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"employees/internal/app/client"
	"employees/internal/domain/employee"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	formatTable = "table"
	formatJSON  = "json"
)

func newListCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List employees",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := a.client.List(cmd.Context())
			if err != nil {
				return fmt.Errorf("list employees: %w", err)
			}
			return printEmployees(cmd.OutOrStdout(), format, list, employee.List{Results: list})
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, json)")
	return cmd
}

func newGetCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "get ID",
		Short: "Show an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			e, err := a.client.Get(cmd.Context(), id)
			if errors.Is(err, client.ErrNotFound) {
				return fmt.Errorf("employee %d not found", id)
			}
			if err != nil {
				return fmt.Errorf("get employee: %w", err)
			}
			return printEmployees(cmd.OutOrStdout(), format, []employee.Employee{e}, e)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", formatTable, "output format (table, json)")
	return cmd
}

func newCreateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an employee",
		Long:  `Create an employee. The server requires --fname, --lname, --age and --title.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := patchFromFlags(cmd)
			if err != nil {
				return err
			}

			id, err := a.client.Create(cmd.Context(), p)
			if err != nil {
				return fmt.Errorf("create employee: %w", err)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "created employee %d\n", id)
			return nil
		},
	}
	addFieldFlags(cmd)
	return cmd
}

func newUpdateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update some fields of an employee",
		Long:  `Update an employee. Only the field flags given are sent; the others keep their stored values.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			p, err := patchFromFlags(cmd)
			if err != nil {
				return err
			}
			if p.Empty() {
				return errors.New("nothing to update, pass at least one of --fname, --lname, --age, --title")
			}

			if err := a.client.Update(cmd.Context(), id, p); err != nil {
				return fmt.Errorf("update employee: %w", err)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "updated employee %d\n", id)
			return nil
		},
	}
	addFieldFlags(cmd)
	return cmd
}

func newDeleteCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "delete ID",
		Short: "Delete an employee",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			err = a.client.Delete(cmd.Context(), id)
			if errors.Is(err, client.ErrNotFound) {
				return fmt.Errorf("employee %d not found", id)
			}
			if err != nil {
				return fmt.Errorf("delete employee: %w", err)
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "deleted employee %d\n", id)
			return nil
		},
	}
}

func addFieldFlags(cmd *cobra.Command) {
	cmd.Flags().String("fname", "", "first name")
	cmd.Flags().String("lname", "", "last name")
	cmd.Flags().Int32("age", 0, "age in years")
	cmd.Flags().String("title", "", "job title")
}

// patchFromFlags sets a field only when its flag was given, so an explicit
// empty value is still sent.
func patchFromFlags(cmd *cobra.Command) (employee.Patch, error) {
	var p employee.Patch
	flags := cmd.Flags()

	for name, dst := range map[string]**string{
		"fname": &p.FName,
		"lname": &p.LName,
		"title": &p.Title,
	} {
		if !flags.Changed(name) {
			continue
		}
		v, err := flags.GetString(name)
		if err != nil {
			return p, err
		}
		*dst = &v
	}

	if flags.Changed("age") {
		age, err := flags.GetInt32("age")
		if err != nil {
			return p, err
		}
		p.Age = &age
	}

	return p, nil
}

func parseID(s string) (int32, error) {
	id, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid employee id %q", s)
	}
	return int32(id), nil
}

// printEmployees writes list as a table, or asJSON in its wire form.
func printEmployees(out io.Writer, format string, list []employee.Employee, asJSON any) error {
	switch format {
	case formatJSON:
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(asJSON)
	case formatTable:
		return printTable(out, list)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}

func printTable(out io.Writer, list []employee.Employee) error {
	if len(list) == 0 {
		_, err := fmt.Fprintln(out, "no employees")
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tFIRST NAME\tLAST NAME\tAGE\tTITLE")
	for _, e := range list {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%s\n", e.ID, e.FName, e.LName, e.Age, e.Title)
	}
	return w.Flush()
}
