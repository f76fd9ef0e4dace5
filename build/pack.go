package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gosimple/slug"
	"github.com/maruel/natural"
	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"spritec/sprite"
	"spritec/state"
	"spritec/utils/images"
)

// Pack builds a sprite sheet straight from a directory of images: every
// decodable file becomes one reference with default options, and a ready
// CSS file with one class per image is produced.
func Pack(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("pack")

	srcDir := cmd.Args().Get(0)
	if len(srcDir) == 0 {
		return errors.New("no image directory has been specified")
	}
	if srcDir, err = filepath.Abs(srcDir); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = filepath.Join(srcDir, "sprite.css")
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if !env.Overwrite {
		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("destination already exists (use --overwrite): %s", dst)
		}
	}

	names, err := listImages(srcDir)
	if err != nil {
		return err
	}
	if len(names) == 0 {
		return fmt.Errorf("no images found under %s", srcDir)
	}

	log.Info("Packing directory",
		zap.String("source", srcDir),
		zap.Int("images", len(names)),
		zap.Stringer("build", env.BuildID))

	// the packer resolves file names against the source directory, not the
	// configured image root
	env.Cfg.Sprite.ImageRoot = srcDir

	reg := sprite.NewRegistry(env.Cfg.Sprite.Placeholder, env.Log)
	sheet := filepath.Base(env.Cfg.Sprite.OutputFile)

	var sb strings.Builder
	for i, name := range names {
		token, err := reg.Register(sprite.Ref{Filename: name, Line: i + 1})
		if err != nil {
			return fmt.Errorf("unable to register %s: %w", name, err)
		}
		fmt.Fprintf(&sb, ".%s {\n\tbackground: url(%q) no-repeat %s;\n}\n\n", className(name), sheet, token)
	}

	out, err := compose(ctx, env, reg, sb.String())
	if err != nil {
		return err
	}

	if err := os.WriteFile(dst, []byte(out), 0644); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	env.Rpt.StoreData("stylesheet.css", []byte(out))

	log.Info("Stylesheet written",
		zap.String("file", dst),
		zap.Int("images", len(names)),
		zap.Duration("elapsed", env.Uptime()))
	return nil
}

// listImages returns decodable file names directly under dir, in natural
// order so that icon2 sorts before icon10.
func listImages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("unable to read image directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.Type().IsRegular() && images.Decodable(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Sort(natural.StringSlice(names))
	return names, nil
}

// className derives a CSS class name from an image file name.
func className(name string) string {
	return slug.Make(strings.TrimSuffix(name, filepath.Ext(name)))
}
