package cli

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/text2song/studio/internal/config"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage client settings",
	Long:  `Manage the settings stored in ~/.t2s-studio/settings.yaml.`,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Set one setting",
	Long: `Set one setting by key. Keys:

  api_url           backend base URL
  timeout           request timeout in seconds
  num_samples       default samples per generation
  temperature       default sampling temperature
  top_k             default top-k
  duration          default duration in seconds
  check_on_startup  check for updates on launch (true/false)
  telemetry         opt-in usage analytics (true/false)`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Configure settings interactively",
	Long: `Configure settings interactively.

Press Enter to keep the current value for any setting.`,
	RunE: runSettingsInit,
}

func init() {
	settingsCmd.AddCommand(settingsInitCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsShowCmd)
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	printField("api_url", settings.Backend.APIURL)
	printField("timeout", fmt.Sprintf("%ds", settings.Backend.TimeoutSeconds))
	printField("num_samples", fmt.Sprintf("%d", settings.Generation.NumSamples))
	printField("temperature", fmt.Sprintf("%.2f", settings.Generation.Temperature))
	printField("top_k", fmt.Sprintf("%d", settings.Generation.TopK))
	printField("duration", fmt.Sprintf("%ds", settings.Generation.Duration))
	printField("updates", fmt.Sprintf("check_on_startup=%t (%s)", settings.Updates.CheckOnStartup, settings.Updates.CheckFrequency))
	printField("telemetry", fmt.Sprintf("%t", settings.Telemetry.Enabled))
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	key, value := args[0], args[1]
	switch key {
	case "api_url":
		settings.Backend.APIURL = value
	case "timeout":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("timeout must be a positive integer")
		}
		settings.Backend.TimeoutSeconds = n
	case "num_samples":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("num_samples must be a positive integer")
		}
		settings.Generation.NumSamples = n
	case "temperature":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("temperature must be a positive number")
		}
		settings.Generation.Temperature = f
	case "top_k":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("top_k must be a positive integer")
		}
		settings.Generation.TopK = n
	case "duration":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("duration must be a positive integer")
		}
		settings.Generation.Duration = n
	case "check_on_startup":
		settings.Updates.CheckOnStartup = value == "true" || value == "yes"
	case "telemetry":
		settings.Telemetry.Enabled = value == "true" || value == "yes"
	default:
		return fmt.Errorf("unknown setting: %s", key)
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Printf("%s %s\n", styleSuccess.Render("Set"), key)
	return nil
}

func runSettingsInit(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return err
	}

	reader := bufio.NewReader(os.Stdin)
	changed := false

	fmt.Printf("Backend URL [%s]: ", settings.Backend.APIURL)
	url, _ := reader.ReadString('\n')
	url = strings.TrimSpace(url)
	if url != "" && url != settings.Backend.APIURL {
		settings.Backend.APIURL = url
		changed = true
	}

	fmt.Printf("Request timeout seconds [%d]: ", settings.Backend.TimeoutSeconds)
	timeout, _ := reader.ReadString('\n')
	timeout = strings.TrimSpace(timeout)
	if timeout != "" {
		n, err := strconv.Atoi(timeout)
		if err != nil || n <= 0 {
			return fmt.Errorf("timeout must be a positive integer")
		}
		if n != settings.Backend.TimeoutSeconds {
			settings.Backend.TimeoutSeconds = n
			changed = true
		}
	}

	fmt.Printf("Default samples per generation [%d]: ", settings.Generation.NumSamples)
	samples, _ := reader.ReadString('\n')
	samples = strings.TrimSpace(samples)
	if samples != "" {
		n, err := strconv.Atoi(samples)
		if err != nil || n <= 0 {
			return fmt.Errorf("num_samples must be a positive integer")
		}
		if n != settings.Generation.NumSamples {
			settings.Generation.NumSamples = n
			changed = true
		}
	}

	fmt.Printf("Default duration seconds [%d]: ", settings.Generation.Duration)
	duration, _ := reader.ReadString('\n')
	duration = strings.TrimSpace(duration)
	if duration != "" {
		n, err := strconv.Atoi(duration)
		if err != nil || n <= 0 {
			return fmt.Errorf("duration must be a positive integer")
		}
		if n != settings.Generation.Duration {
			settings.Generation.Duration = n
			changed = true
		}
	}

	newCheck := promptYesNoWithCurrent(reader, "Check for updates on startup?", settings.Updates.CheckOnStartup)
	if newCheck != settings.Updates.CheckOnStartup {
		settings.Updates.CheckOnStartup = newCheck
		changed = true
	}

	newTelemetry := promptYesNoWithCurrent(reader, "Enable anonymous usage analytics?", settings.Telemetry.Enabled)
	if newTelemetry != settings.Telemetry.Enabled {
		settings.Telemetry.Enabled = newTelemetry
		changed = true
	}

	if !changed {
		fmt.Println("\nNo changes made.")
		return nil
	}

	if err := config.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	fmt.Println("\nSettings updated.")
	return nil
}

// promptYesNoWithCurrent prompts for a yes/no value showing the current value.
func promptYesNoWithCurrent(reader *bufio.Reader, prompt string, current bool) bool {
	currentStr := "no"
	if current {
		currentStr = "yes"
	}

	fmt.Printf("  %s [%s]: ", prompt, currentStr)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))

	if response == "" {
		return current
	}
	return response == "y" || response == "yes"
}
