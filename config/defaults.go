// seehuhn.de/go/invoice - render invoice data as PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package config

// Default returns the built-in configuration.
// Every call returns a new tree, which the caller may modify.
func Default() *Config {
	return &Config{
		Style: Style{
			Document: DocumentStyle{
				Paper:        "A4",
				MarginLeft:   30,
				MarginRight:  30,
				MarginTop:    30,
				MarginBottom: 40,
			},
			Fonts: FontsStyle{
				Normal: FontFace{
					Name:  "Helvetica",
					Range: `[^\x{0000}-\x{00FF}]`,
				},
				Bold: FontFace{
					Name: "Helvetica-Bold",
				},
				Fallback: FallbackFont{
					Name:  "Go-Regular",
					Range: `[^\x{0000}-\x{0500}]`,
					Mode:  FallbackSubstitute,
				},
			},
			Header: HeaderStyle{
				BackgroundColor: "#F8F8FA",
				Height:          150,
				TextPosition:    330,
				RegularColor:    "#000100",
				SecondaryColor:  "#8F8F8F",
				LineMargin:      4,
			},
			Details: DetailsStyle{
				Offset:      18,
				MaxWidth:    250,
				LabelMargin: 8,
				ValueMargin: 4,
			},
			Table: TableStyle{
				Layout:    LayoutAuto,
				Gap:       11.5,
				ColumnGap: 10,
				Slots: []Slot{
					{Name: "item", Position: 30, MaxWidth: 230},
					{Name: "quantity", Position: 270, MaxWidth: 60},
					{Name: "rate", Position: 340, MaxWidth: 140},
					{Name: "amount", Position: 490, MaxWidth: 80},
				},
				Total: Slot{Name: "total", Position: 490, MaxWidth: 80},
				Line: LineStyle{
					Color:   "#F0F0F0",
					Width:   1,
					Spacing: 5,
				},
			},
			Total: TotalStyle{
				Label:     Slot{Name: "label", Position: 330, MaxWidth: 140},
				Value:     Slot{Name: "value", Position: 490, MaxWidth: 80},
				Align:     AlignRight,
				MarginTop: 12,
				Gap:       10,
			},
			Legal: LegalStyle{
				Gap:       15,
				MarginTop: 10,
				Indent:    60,
			},
			Text: TextStyle{
				PrimaryColor:   "#000100",
				SecondaryColor: "#8F8F8F",
				HeadingSize:    15,
				RegularSize:    10,
				LineFallback:   11.5,
			},
		},
		Data: Data{
			Invoice: InvoiceData{
				Name: "Invoice for Acme",
				Header: []Line{
					{Label: "Invoice Number", Value: Values{Number(1)}},
				},
				Customer: []Line{
					{Label: "Bill To", Value: Values{}},
				},
				Seller: []Line{
					{Label: "Bill From", Value: Values{}},
				},
				Details: Details{
					Header: []Column{
						{Value: String("Description")},
						{Value: String("Quantity")},
						{Value: String("Subtotal")},
					},
					Parts: [][]Column{},
					Total: []Total{
						{Label: "Total", Value: Number(0)},
					},
				},
				Legal: []Legal{},
			},
		},
	}
}
