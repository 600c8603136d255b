// Copyright 2025 The Vitrine Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vitrine-io/vitrine/internal/handler/management"
	"github.com/vitrine-io/vitrine/internal/vitrine"
	"github.com/vitrine-io/vitrine/internal/x/errorchain"
	"github.com/vitrine-io/vitrine/internal/x/httpx"
)

// nolint: gochecknoinits
func init() {
	RootCmd.AddCommand(newHealthCmd())
}

func newHealthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "health",
		Short:   "Checks the health status of a vitrine deployment",
		Example: "vitrine health -e http://127.0.0.1:3334",
		Run: func(cmd *cobra.Command, _ []string) {
			if err := checkHealth(cmd); err != nil {
				cmd.PrintErrf("%v\n", err)

				os.Exit(1)
			}
		},
	}

	cmd.PersistentFlags().StringP("endpoint", "e", "http://127.0.0.1:3334",
		"The base URL of vitrine's management service.")
	cmd.PersistentFlags().StringP("output", "o", "text",
		`The format for the result output. Can be "json", "text", or "yaml".`)
	cmd.PersistentFlags().BoolP("verbose", "v", false,
		"Dumps the exchanged HTTP messages to stderr.")

	return cmd
}

func checkHealth(cmd *cobra.Command) error {
	endpointURL, _ := cmd.Flags().GetString("endpoint")
	outputFormat, _ := cmd.Flags().GetString("output")
	verbose, _ := cmd.Flags().GetBool("verbose")

	ctx := cmd.Context()
	if verbose {
		ctx = zerolog.New(zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
			w.Out = cmd.ErrOrStderr()
		})).Level(zerolog.TraceLevel).WithContext(ctx)
	}

	client := &http.Client{Transport: httpx.NewTraceRoundTripper(http.DefaultTransport)}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		fmt.Sprintf("%s%s", endpointURL, management.EndpointHealth), nil)
	if err != nil {
		return errorchain.NewWithMessage(vitrine.ErrArgument, "failed to create request").CausedBy(err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return errorchain.NewWithMessage(vitrine.ErrInternal, "failed to send request").CausedBy(err)
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errorchain.NewWithMessagef(vitrine.ErrInternal, "unexpected HTTP status code: %s", resp.Status)
	}

	rawResp, err := io.ReadAll(resp.Body)
	if err != nil {
		return errorchain.NewWithMessage(vitrine.ErrInternal, "failed to read response").CausedBy(err)
	}

	var structuredResponse map[string]any
	if err = json.Unmarshal(rawResp, &structuredResponse); err != nil {
		return errorchain.NewWithMessage(vitrine.ErrInternal, "failed to unmarshal response").CausedBy(err)
	}

	switch outputFormat {
	case "json":
		cmd.Println(string(rawResp))
	case "yaml":
		rawYaml, err := yaml.Marshal(structuredResponse)
		if err != nil {
			return errorchain.NewWithMessage(vitrine.ErrInternal, "failed to convert response to yaml").CausedBy(err)
		}

		cmd.Print(string(rawYaml))
	default:
		cmd.Println(structuredResponse["status"])
	}

	return nil
}
