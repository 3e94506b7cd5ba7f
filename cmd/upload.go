package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"bucket-catalog/feature/upload"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// uploadCmd represents the upload command
var uploadCmd = &cobra.Command{
	Use:   "upload <path>",
	Short: "Upload a local file with its tags",
	Long:  `Stores a local file in the bucket and tags it, exactly as POST /upload would. Existing objects with the same name are overwritten.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		name, _ := cmd.Flags().GetString("name")
		tags, _ := cmd.Flags().GetString("tags")
		if name == "" {
			name = filepath.Base(path)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		e, err := setup(nil)
		if err != nil {
			return err
		}
		defer e.logger.Sync()

		if err := upload.NewService(e.bucket, e.logger).Upload(cmd.Context(), name, data, tags); err != nil {
			return err
		}

		e.logger.Info("Image Uploaded", zap.String("file", name), zap.String("bucket", e.bucket.Name()))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(uploadCmd)
	uploadCmd.Flags().String("name", "", "Object name (defaults to the file's base name)")
	uploadCmd.Flags().String("tags", "", "Comma separated tag string")
}
