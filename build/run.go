// Package build implements the spritec subcommands: compiling a stylesheet
// with sprite() references and packing a whole directory of images.
package build

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"spritec/sprite"
	"spritec/state"
	"spritec/stylus"
)

// Run compiles a stylesheet: scans it for sprite() calls, builds the
// composite image and writes the substituted stylesheet next to it.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("build")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input stylesheet has been specified")
	}
	if src, err = filepath.Abs(src); err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		dst = strings.TrimSuffix(src, filepath.Ext(src)) + ".css"
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if dst == src {
		return fmt.Errorf("output stylesheet would overwrite the input: %s", src)
	}
	if !env.Overwrite {
		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("destination already exists (use --overwrite): %s", dst)
		}
	}

	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("unable to read stylesheet: %w", err)
	}
	env.Rpt.Store("stylesheet.src", src)

	log.Info("Compiling stylesheet",
		zap.String("source", src),
		zap.String("destination", dst),
		zap.Stringer("build", env.BuildID))

	reg := sprite.NewRegistry(env.Cfg.Sprite.Placeholder, env.Log)
	scanner := stylus.NewScanner(reg, "", env.Log)
	text, err := scanner.Process(data)
	if err != nil {
		return err
	}
	if reg.Len() == 0 {
		log.Warn("No sprite references found", zap.String("source", src))
	}

	out, err := compose(ctx, env, reg, text)
	if err != nil {
		return err
	}

	if err := os.WriteFile(dst, []byte(out), 0644); err != nil {
		return fmt.Errorf("unable to write stylesheet: %w", err)
	}
	env.Rpt.StoreData("stylesheet.css", []byte(out))

	log.Info("Stylesheet written",
		zap.String("file", dst),
		zap.Int("references", reg.Len()),
		zap.Duration("elapsed", env.Uptime()))
	return nil
}

// compose runs the layout engine over the registered blocks and produces
// the configured side artifacts (preview page, atlas manifest).
func compose(ctx context.Context, env *state.LocalEnv, reg *sprite.Registry, text string) (string, error) {
	builder, err := sprite.NewBuilder(reg, sprite.BuilderOptions{
		ImageRoot:   env.Cfg.Sprite.ImageRoot,
		OutputFile:  env.Cfg.Sprite.OutputFile,
		JPEGQuality: env.Cfg.Sprite.JPEGQuality,
		Optimizer:   env.Cfg.Sprite.Optimizer,
	}, env.Log)
	if err != nil {
		return "", err
	}

	out, err := builder.Build(ctx, text)
	if err != nil {
		return "", err
	}
	env.Rpt.Store("sprite.image", env.Cfg.Sprite.OutputFile)

	if env.Cfg.Manifest.Enable {
		if err := writeManifest(env.Cfg.Manifest.Destination, filepath.Base(env.Cfg.Sprite.OutputFile), reg.Blocks()); err != nil {
			return "", fmt.Errorf("unable to write atlas manifest: %w", err)
		}
		env.Rpt.Store("sprite.manifest", env.Cfg.Manifest.Destination)
	}
	if env.Cfg.Preview.Enable {
		if err := writePreview(env.Cfg.Preview.Destination, filepath.Base(env.Cfg.Sprite.OutputFile), reg.Blocks(), env.BuildID.String()); err != nil {
			return "", fmt.Errorf("unable to write preview page: %w", err)
		}
		env.Rpt.Store("sprite.preview", env.Cfg.Preview.Destination)
	}
	return out, nil
}
