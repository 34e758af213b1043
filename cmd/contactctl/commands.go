package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"slices"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/dtroode/contactbook/internal/client"
	"github.com/dtroode/contactbook/internal/logger"
	"github.com/dtroode/contactbook/internal/model"
)

const (
	envAPIURL     = "CONTACTS_API_URL"
	defaultAPIURL = "http://localhost:8080/api"
)

type options struct {
	apiURL   string
	timeout  time.Duration
	logLevel int
}

func newRootCommand(out io.Writer) *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "contactctl",
		Short:         "Manage contacts in the contact directory",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	defaultURL := os.Getenv(envAPIURL)
	if defaultURL == "" {
		defaultURL = defaultAPIURL
	}
	root.PersistentFlags().StringVar(&opts.apiURL, "url", defaultURL, "directory API base URL (env "+envAPIURL+")")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", client.DefaultTimeout, "request timeout")
	root.PersistentFlags().IntVar(&opts.logLevel, "log-level", 8, "slog level for client diagnostics")

	root.AddCommand(
		newListCommand(opts),
		newGetCommand(opts),
		newAddCommand(opts),
		newEditCommand(opts),
		newDeleteCommand(opts),
	)
	return root
}

func (o *options) directory(cmd *cobra.Command) *client.Directory {
	l := logger.NewWithWriter(cmd.ErrOrStderr(), o.logLevel)
	return client.NewDirectory(client.NewHTTP(o.apiURL, o.timeout), l)
}

func newListCommand(opts *options) *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List contacts, optionally filtered by name or email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := opts.directory(cmd)
			if err := d.Refresh(cmd.Context()); err != nil {
				return failure(d, err)
			}
			d.SetSearchTerm(search)
			return printContacts(cmd.OutOrStdout(), d.View())
		},
	}
	cmd.Flags().StringVar(&search, "search", "", "case-insensitive substring of name or email")
	return cmd
}

func newGetCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show one contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d := opts.directory(cmd)
			contact, err := find(cmd.Context(), d, id)
			if err != nil {
				return err
			}
			return printContacts(cmd.OutOrStdout(), slices.Values([]model.Contact{contact}))
		},
	}
}

func newAddCommand(opts *options) *cobra.Command {
	var draft model.ContactFields

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Create a contact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			d := opts.directory(cmd)
			if err := d.Submit(cmd.Context(), draft); err != nil {
				return failure(d, err)
			}
			return printContacts(cmd.OutOrStdout(), d.View())
		},
	}
	cmd.Flags().StringVar(&draft.Name, "name", "", "contact name")
	cmd.Flags().StringVar(&draft.Email, "email", "", "contact email")
	cmd.Flags().StringVar(&draft.Phone, "phone", "", "contact phone")
	return cmd
}

func newEditCommand(opts *options) *cobra.Command {
	var name, email, phone string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Update a contact; omitted fields keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d := opts.directory(cmd)
			contact, err := find(cmd.Context(), d, id)
			if err != nil {
				return err
			}

			d.BeginEdit(contact)
			draft := d.Draft()
			if cmd.Flags().Changed("name") {
				draft.Name = name
			}
			if cmd.Flags().Changed("email") {
				draft.Email = email
			}
			if cmd.Flags().Changed("phone") {
				draft.Phone = phone
			}

			if err := d.Submit(cmd.Context(), draft); err != nil {
				return failure(d, err)
			}
			return printContacts(cmd.OutOrStdout(), d.View())
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new name")
	cmd.Flags().StringVar(&email, "email", "", "new email")
	cmd.Flags().StringVar(&phone, "phone", "", "new phone")
	return cmd
}

func newDeleteCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a contact",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			d := opts.directory(cmd)
			if err := d.Delete(cmd.Context(), id); err != nil {
				return failure(d, err)
			}
			return printContacts(cmd.OutOrStdout(), d.View())
		},
	}
}

func parseID(arg string) (model.ContactID, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid contact id %q", arg)
	}
	return model.ContactID(id), nil
}

// find refreshes d and returns the contact with id from the fetched list.
func find(ctx context.Context, d *client.Directory, id model.ContactID) (model.Contact, error) {
	if err := d.Refresh(ctx); err != nil {
		return model.Contact{}, failure(d, err)
	}
	for _, c := range d.Contacts() {
		if c.ID == id {
			return c, nil
		}
	}
	return model.Contact{}, fmt.Errorf("contact %d not found", id)
}

// failure prefers the message the directory would show to the user.
func failure(d *client.Directory, err error) error {
	if msg := d.LastError(); msg != "" {
		return errors.New(msg)
	}
	return err
}

func printContacts(out io.Writer, contacts iter.Seq[model.Contact]) error {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tEMAIL\tPHONE")
	for c := range contacts {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", c.ID, c.Name, c.Email, c.Phone)
	}
	return w.Flush()
}
