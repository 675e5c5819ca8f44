/*
Copyright © 2025 Slidegen Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/slidedeck/slidegen"
	"github.com/spf13/cobra"
)

var withGeometry bool

var lsLayoutsCmd = &cobra.Command{
	Use:   "ls-layouts",
	Short: "list available slide layouts",
	Long:  `list available slide layouts.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if withGeometry {
			b, err := json.MarshalIndent(slidegen.DefaultGeometryTable(), "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}
		for _, a := range slidegen.Archetypes() {
			fmt.Println(a)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsLayoutsCmd)
	lsLayoutsCmd.Flags().BoolVarP(&withGeometry, "geometry", "", false, "print layout geometry as JSON")
}
