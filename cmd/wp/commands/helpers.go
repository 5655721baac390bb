package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/pressflow-io/wpapi/pkg/wpapi"
	"github.com/pressflow-io/wpapi/pkg/wpclient"
)

// Output formats.
const (
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"

	// Masked hides sensitive configuration values.
	Masked = "***"
)

// Common static errors used throughout the commands package.
var (
	ErrEndpointNotConfigured = errors.New("no endpoint configured: use 'wp config set endpoint <url>' or --endpoint")
	ErrResourceRequired      = errors.New("resource path is required")
	ErrDataRequired          = errors.New("request data is required: use --data '<json>'")
	ErrInvalidDataJSON       = errors.New("request data must be a JSON object")
	ErrUnknownConfigKey      = errors.New("unknown configuration key")
)

// buildClient constructs a wpapi.Client from the viper configuration.
func buildClient() (wpapi.Client, error) {
	endpoint := viper.GetString("endpoint")
	if endpoint == "" {
		return nil, ErrEndpointNotConfigured
	}

	config := &wpapi.Config{
		Endpoint:     endpoint,
		ClientKey:    viper.GetString("client_key"),
		ClientSecret: viper.GetString("client_secret"),
		AccessToken:  viper.GetString("access_token"),
		AccessSecret: viper.GetString("access_secret"),
		Username:     viper.GetString("username"),
		Password:     viper.GetString("password"),
		MaxRetries:   viper.GetInt("max_retries"),
	}

	if viper.GetBool("verbose") {
		config.Debug = true
		config.Logger = NewLogger()
	}

	client, err := wpclient.New(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return client, nil
}

// decodeData parses the --data flag into the request body mapping.
func decodeData(data string) (map[string]interface{}, error) {
	if data == "" {
		return nil, ErrDataRequired
	}

	var body map[string]interface{}
	if err := json.Unmarshal([]byte(data), &body); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDataJSON, err)
	}

	return body, nil
}

// renderResult writes a result in the configured output format.
func renderResult(result *wpapi.Result) error {
	output := viper.GetString("output")
	switch output {
	case OutputFormatJSON:
		var v interface{}
		if err := result.Into(&v); err != nil {
			return err
		}

		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")

		return encoder.Encode(v)
	case OutputFormatYAML:
		var v interface{}
		if err := result.Into(&v); err != nil {
			return err
		}

		encoder := yaml.NewEncoder(os.Stdout)

		return encoder.Encode(v)
	default:
		renderTable(result)

		return nil
	}
}

// renderTable writes a compact table of the items in the result. Collection
// and single-item responses are both handled.
func renderTable(result *wpapi.Result) {
	body := gjson.ParseBytes(result.Bytes())

	items := []gjson.Result{body}
	if body.IsArray() {
		items = body.Array()
	}

	if len(items) == 0 {
		fmt.Println("No resources found")

		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.Header("ID", "Title", "Status", "Date")

	for _, item := range items {
		row := itemRow(item)
		_ = table.Append(row[0], row[1], row[2], row[3])
	}

	_ = table.Render()

	if page := result.Page(); page.Total > 0 {
		fmt.Printf("%d records, %d pages\n", page.Total, page.TotalPages)
	}
}

// itemRow extracts display columns from a resource. Field names differ
// between collections: posts carry a rendered title, taxonomies and users a
// plain name.
func itemRow(item gjson.Result) []string {
	title := item.Get("title.rendered").String()
	if title == "" {
		title = item.Get("name").String()
	}

	status := item.Get("status").String()
	if status == "" {
		status = item.Get("slug").String()
	}

	date := item.Get("date").String()
	if date == "" {
		date = item.Get("registered_date").String()
	}

	return []string{
		item.Get("id").String(),
		title,
		status,
		date,
	}
}
