package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

var audioCmd = &cobra.Command{
	Use:   "audio",
	Short: "Inspect generated audio samples",
}

var audioShowCmd = &cobra.Command{
	Use:   "show [audio-id]",
	Short: "Show an audio sample",
	Args:  cobra.ExactArgs(1),
	RunE:  runAudioShow,
}

var audioURLCmd = &cobra.Command{
	Use:   "url [audio-id]",
	Short: "Print the playback stream URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runAudioURL,
}

var audioCompareCmd = &cobra.Command{
	Use:   "compare [audio-id]...",
	Short: "Compare samples side by side",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runAudioCompare,
}

func init() {
	audioCmd.AddCommand(audioCompareCmd)
	audioCmd.AddCommand(audioShowCmd)
	audioCmd.AddCommand(audioURLCmd)
}

func runAudioShow(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	sample, err := client.GetAudio(context.Background(), args[0])
	if err != nil {
		return err
	}

	printField("ID", sample.ID)
	printField("Prompt", sample.PromptID)
	printField("Adapter", orDash(sample.AdapterID))
	printField("Duration", fmt.Sprintf("%.1fs", sample.DurationSeconds))
	printField("Sample rate", fmt.Sprintf("%d Hz", sample.SampleRate))
	printField("Created", formatTime(sample.CreatedAt))
	printField("Stream", client.AudioStreamURL(sample.ID))
	return nil
}

func runAudioURL(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}
	fmt.Println(client.AudioStreamURL(args[0]))
	return nil
}

func runAudioCompare(cmd *cobra.Command, args []string) error {
	client, _, err := newAPIClient()
	if err != nil {
		return err
	}

	samples, err := client.CompareAudio(context.Background(), args)
	if err != nil {
		return err
	}

	for _, s := range samples {
		fmt.Printf("%s  adapter %s  %.1fs  %d Hz\n",
			styleCommand.Render(shortID(s.ID)), orDash(s.AdapterID), s.DurationSeconds, s.SampleRate)
	}
	return nil
}
