package main

import (
	"vitalsign-service/internal/app/services/core/vital_signs"
	"vitalsign-service/internal/pkg/dto/requests"
	"vitalsign-service/internal/pkg/exceptions"
	"vitalsign-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
)

func (app *cli) bundleCmd() *cobra.Command {
	request := &requests.VitalSigns{}
	var height, weight string

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Print the transaction bundle for one set of vital signs",
		RunE: func(cmd *cobra.Command, args []string) error {
			request.Height = requests.NumericString(height)
			request.Weight = requests.NumericString(weight)
			if err := utils.ValidateStruct(request); err != nil {
				return exceptions.ErrInputValidation(err)
			}

			assembler := vital_signs.NewBundleAssembler(vital_signs.NewResourceBuilder(app.internalConfig))
			bundle, _ := assembler.Assemble(vital_signs.ToVitalSigns(request))

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(bundle)
		},
	}
	cmd.Flags().StringVar(&request.Given, "given", "", "Given name")
	cmd.Flags().StringVar(&request.Family, "family", "", "Family name")
	cmd.Flags().StringVar(&request.Gender, "gender", "", "male, female, other or unknown")
	cmd.Flags().StringVar(&request.BirthDate, "birth-date", "", "Birth date, YYYY-MM-DD")
	cmd.Flags().StringVar(&height, "height", "", "Height value")
	cmd.Flags().StringVar(&weight, "weight", "", "Weight value")
	cmd.Flags().StringVar(&request.HeightUnit, "height-unit", "cm", "Height unit")
	cmd.Flags().StringVar(&request.WeightUnit, "weight-unit", "kg", "Weight unit")
	return cmd
}
