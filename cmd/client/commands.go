// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-library-catalog/internal/adapter"
	"github.com/MKhiriev/go-library-catalog/models"
)

type cli struct {
	client    adapter.CatalogClient
	buildInfo string
}

// newRootCmd builds the client command tree. Positional arguments are
// validated before any request is sent; a validation failure prints the
// command usage.
func newRootCmd(client adapter.CatalogClient, buildInfo string) *cobra.Command {
	c := &cli{client: client, buildInfo: buildInfo}

	root := &cobra.Command{
		Use:           "client",
		Short:         "Command-line client of the library catalog API",
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			// arguments are valid by now, request failures need no usage dump
			cmd.SilenceUsage = true
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		&cobra.Command{
			Use:   "version",
			Short: "Print client build info and server version",
			Args:  cobra.NoArgs,
			RunE:  c.version,
		},
		&cobra.Command{
			Use:   "register <username> <password>",
			Short: "Create an account",
			Args:  cobra.ExactArgs(2),
			RunE:  c.register,
		},
		&cobra.Command{
			Use:   "login <username> <password>",
			Short: "Log in and print the access token",
			Args:  cobra.ExactArgs(2),
			RunE:  c.login,
		},
		&cobra.Command{
			Use:   "authors",
			Short: "List authors",
			Args:  cobra.NoArgs,
			RunE:  c.listAuthors,
		},
		&cobra.Command{
			Use:   "add-author <name> [email] [birth_year]",
			Short: "Create an author",
			Args:  cobra.MatchAll(cobra.RangeArgs(1, 3), intArgs(2)),
			RunE:  c.addAuthor,
		},
		&cobra.Command{
			Use:   "delete-author <id>",
			Short: "Delete an author and their books",
			Args:  cobra.MatchAll(cobra.ExactArgs(1), idArgs(0)),
			RunE:  c.deleteAuthor,
		},
		&cobra.Command{
			Use:   "categories",
			Short: "List categories",
			Args:  cobra.NoArgs,
			RunE:  c.listCategories,
		},
		&cobra.Command{
			Use:   "add-category <name> [description]",
			Short: "Create a category",
			Args:  cobra.RangeArgs(1, 2),
			RunE:  c.addCategory,
		},
		&cobra.Command{
			Use:   "delete-category <id>",
			Short: "Delete a category",
			Args:  cobra.MatchAll(cobra.ExactArgs(1), idArgs(0)),
			RunE:  c.deleteCategory,
		},
		&cobra.Command{
			Use:   "books",
			Short: "List books",
			Args:  cobra.NoArgs,
			RunE:  c.listBooks,
		},
		&cobra.Command{
			Use:   "book <id>",
			Short: "Show one book",
			Args:  cobra.MatchAll(cobra.ExactArgs(1), idArgs(0)),
			RunE:  c.getBook,
		},
		&cobra.Command{
			Use:   "add-book <title> <author_id> [cover_path]",
			Short: "Create a book, optionally uploading a cover image",
			Args:  cobra.MatchAll(cobra.RangeArgs(2, 3), idArgs(1)),
			RunE:  c.addBook,
		},
		&cobra.Command{
			Use:   "delete-book <id>",
			Short: "Delete a book",
			Args:  cobra.MatchAll(cobra.ExactArgs(1), idArgs(0)),
			RunE:  c.deleteBook,
		},
		&cobra.Command{
			Use:   "cover <name> <output_path>",
			Short: "Download a cover image",
			Args:  cobra.ExactArgs(2),
			RunE:  c.downloadCover,
		},
	)

	return root
}

// ─────────────────────────────────────────────
// Commands
// ─────────────────────────────────────────────

func (c *cli) version(cmd *cobra.Command, _ []string) error {
	serverVersion, err := c.client.Version(cmd.Context())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, c.buildInfo)
	fmt.Fprintf(out, "Server version: %s\n", serverVersion)
	return nil
}

func (c *cli) register(cmd *cobra.Command, args []string) error {
	if err := c.client.Register(cmd.Context(), models.Credentials{Username: args[0], Password: args[1]}); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), "registered", args[0])
	return nil
}

func (c *cli) login(cmd *cobra.Command, args []string) error {
	resp, err := c.client.Login(cmd.Context(), models.Credentials{Username: args[0], Password: args[1]})
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), resp.AccessToken)
	return nil
}

func (c *cli) listAuthors(cmd *cobra.Command, _ []string) error {
	authors, err := c.client.ListAuthors(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), authors)
}

func (c *cli) addAuthor(cmd *cobra.Command, args []string) error {
	payload := adapter.AuthorPayload{Name: args[0]}
	if len(args) > 1 && args[1] != "" {
		payload.Email = &args[1]
	}
	if len(args) > 2 {
		year, _ := strconv.Atoi(args[2])
		payload.BirthYear = &year
	}

	author, err := c.client.CreateAuthor(cmd.Context(), payload)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), author)
}

func (c *cli) deleteAuthor(cmd *cobra.Command, args []string) error {
	return c.client.DeleteAuthor(cmd.Context(), mustID(args[0]))
}

func (c *cli) listCategories(cmd *cobra.Command, _ []string) error {
	categories, err := c.client.ListCategories(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), categories)
}

func (c *cli) addCategory(cmd *cobra.Command, args []string) error {
	payload := adapter.CategoryPayload{Name: args[0]}
	if len(args) > 1 {
		payload.Description = &args[1]
	}

	category, err := c.client.CreateCategory(cmd.Context(), payload)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), category)
}

func (c *cli) deleteCategory(cmd *cobra.Command, args []string) error {
	return c.client.DeleteCategory(cmd.Context(), mustID(args[0]))
}

func (c *cli) listBooks(cmd *cobra.Command, _ []string) error {
	books, err := c.client.ListBooks(cmd.Context())
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), books)
}

func (c *cli) getBook(cmd *cobra.Command, args []string) error {
	book, err := c.client.GetBook(cmd.Context(), mustID(args[0]))
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), book)
}

func (c *cli) addBook(cmd *cobra.Command, args []string) error {
	payload := adapter.BookPayload{Title: args[0], AuthorID: mustID(args[1])}

	var cover *adapter.CoverFile
	if len(args) > 2 {
		file, err := os.Open(args[2])
		if err != nil {
			return fmt.Errorf("open cover: %w", err)
		}
		defer file.Close()
		cover = &adapter.CoverFile{Filename: filepath.Base(args[2]), Content: file}
	}

	book, err := c.client.CreateBook(cmd.Context(), payload, cover)
	if err != nil {
		return err
	}
	return printJSON(cmd.OutOrStdout(), book)
}

func (c *cli) deleteBook(cmd *cobra.Command, args []string) error {
	return c.client.DeleteBook(cmd.Context(), mustID(args[0]))
}

func (c *cli) downloadCover(cmd *cobra.Command, args []string) error {
	body, _, err := c.client.DownloadCover(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if err = os.WriteFile(args[1], body, 0o644); err != nil {
		return fmt.Errorf("write cover: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "saved %d bytes to %s\n", len(body), args[1])
	return nil
}

// ---- Helpers ----

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// idArgs checks that the arguments at the given positions, when present,
// are positive integer ids.
func idArgs(positions ...int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		for _, pos := range positions {
			if pos >= len(args) {
				continue
			}
			if _, err := parseID(args[pos]); err != nil {
				return err
			}
		}
		return nil
	}
}

// intArgs checks that the arguments at the given positions, when present,
// are integers.
func intArgs(positions ...int) cobra.PositionalArgs {
	return func(_ *cobra.Command, args []string) error {
		for _, pos := range positions {
			if pos >= len(args) {
				continue
			}
			if _, err := strconv.Atoi(args[pos]); err != nil {
				return fmt.Errorf("argument %d must be a number, got %q", pos+1, args[pos])
			}
		}
		return nil
	}
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer, got %q", raw)
	}
	return id, nil
}

// mustID parses an id already checked by idArgs.
func mustID(raw string) int64 {
	id, _ := parseID(raw)
	return id
}
