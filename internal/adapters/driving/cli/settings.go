package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/calendlam/calendlam/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage booklet settings",
	Long: `View and change the settings stored in the configuration file.

Flags on generate, layout, verify and locate override these settings
for a single run without changing the file.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change a setting",
	Long: `Change a single setting and save it. Run "calendlam settings keys"
for the accepted keys.

Examples:
  calendlam settings set booklet.year 2027
  calendlam settings set booklet.first_weekday sunday
  calendlam settings set locale.labels primary`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Booklet:")
	fmt.Fprintf(out, "  Year:                %d\n", settings.Year)
	fmt.Fprintf(out, "  Pages per signature: %d\n", settings.PagesPerSignature)
	fmt.Fprintf(out, "  First weekday:       %s\n", settings.FirstWeekday)
	fmt.Fprintf(out, "  Week mode:           %s (%s)\n", settings.WeekMode, settings.WeekMode.Description())
	fmt.Fprintln(out, "Locale:")
	fmt.Fprintf(out, "  Primary:             %s\n", settings.PrimaryLocale)
	fmt.Fprintf(out, "  Secondary:           %s\n", settings.SecondaryLocale)
	fmt.Fprintf(out, "  Labels:              %s (%s)\n", settings.Labels, settings.Labels.Description())
	fmt.Fprintln(out, "Output:")
	fmt.Fprintf(out, "  Directory:           %s\n", settings.OutputDir)
	if configStore != nil && configStore.Path() != "" {
		fmt.Fprintf(out, "\nConfig file: %s\n", configStore.Path())
	}

	if err := settingsService.Validate(); err != nil {
		fmt.Fprintf(out, "\nWarning: %v\n", err)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		if errors.Is(err, domain.ErrConfiguration) {
			return fmt.Errorf("%w (see \"calendlam settings keys\")", err)
		}
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], args[1])
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}
	for _, key := range settingsService.Keys() {
		fmt.Fprintln(cmd.OutOrStdout(), key)
	}
	return nil
}
