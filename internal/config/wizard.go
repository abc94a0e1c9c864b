package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/manifoldco/promptui"
)

// RunWizard interactively builds a configuration and writes it to
// .cinematch.yml in the current directory.
func RunWizard() (*Config, error) {
	fmt.Println("cinematch setup")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Data directory.
	dataPrompt := promptui.Prompt{
		Label:   "Catalog data directory",
		Default: cfg.DataDir,
	}
	dataDir, err := dataPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("data directory: %w", err)
	}
	cfg.DataDir = dataDir

	// 2. Catalog file pattern.
	globPrompt := promptui.Prompt{
		Label:   "Catalog file glob",
		Default: cfg.CatalogGlobs[0],
	}
	glob, err := globPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("catalog glob: %w", err)
	}
	cfg.CatalogGlobs = []string{glob}

	// 3. Rows without a title.
	policyPrompt := promptui.Select{
		Label: "Rows without a title",
		Items: []string{
			"skip — drop the row and keep loading",
			"fail — abort the whole load",
		},
	}
	policyIdx, _, err := policyPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("missing-title policy: %w", err)
	}
	cfg.MissingTitle = [...]MissingTitlePolicy{PolicySkip, PolicyFail}[policyIdx]

	// 4. Default recommendation count.
	limitPrompt := promptui.Prompt{
		Label:   "Default number of recommendations (1-20)",
		Default: strconv.Itoa(cfg.DefaultLimit),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 20 {
				return fmt.Errorf("enter a number between 1 and 20")
			}
			return nil
		},
	}
	limitStr, err := limitPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("default limit: %w", err)
	}
	cfg.DefaultLimit, _ = strconv.Atoi(limitStr)

	// 5. Server port.
	portPrompt := promptui.Prompt{
		Label:   "HTTP server port",
		Default: strconv.Itoa(cfg.Server.Port),
		Validate: func(s string) error {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 || n > 65535 {
				return fmt.Errorf("enter a valid port number")
			}
			return nil
		},
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(portStr)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(DefaultConfigFile); err != nil {
		return nil, err
	}

	wd, _ := os.Getwd()
	fmt.Printf("\nWrote %s in %s\n", DefaultConfigFile, wd)
	fmt.Println("Next: put your catalog CSVs in the data directory and run `cinematch recommend \"The Dark Knight\"`.")

	return cfg, nil
}
