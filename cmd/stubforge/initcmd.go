package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/stubforge/stubforge/internal/config"
)

const exampleSpec = `{
  "framework": "pytest",
  "language": "python",
  "tests": [
    {
      "type": "unit",
      "filename": "test_calculator.py",
      "moduleName": "calculator",
      "setup": ["calc = Calculator()"],
      "cleanup": ["del calc"],
      "testCases": [
        {
          "name": "addition",
          "description": "add returns the sum of two numbers",
          "setup": ["a = 2", "b = 3"],
          "act": ["result = calc.add(a, b)"],
          "assertions": ["assert result == 5"]
        }
      ]
    },
    {
      "type": "e2e",
      "framework": "jest",
      "filename": "checkout.test.js",
      "featureName": "checkout flow",
      "scenarios": [
        {
          "scenario": "guest checkout",
          "given": ["const cart = buildCart(['book']);"],
          "when": ["const order = await checkout(cart);"],
          "then": ["expect(order.status).toBe('confirmed');"]
        }
      ]
    }
  ]
}
`

func initCmd() *cobra.Command {
	var specFile string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write an example spec document and project config",
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(specFile); err == nil {
				return fmt.Errorf("%s already exists", specFile)
			}
			if err := os.WriteFile(specFile, []byte(exampleSpec), 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", specFile, err)
			}

			if err := config.SaveProjectConfig(".", config.DefaultProjectConfig()); err != nil {
				return fmt.Errorf("failed to write .stubforge.yaml: %w", err)
			}

			fmt.Printf("Wrote %s and .stubforge.yaml\n", specFile)
			fmt.Println("Run: stubforge generate --config " + specFile)
			return nil
		},
	}

	cmd.Flags().StringVarP(&specFile, "spec", "s", "example.testspec.json", "Path for the example spec document")

	return cmd
}
