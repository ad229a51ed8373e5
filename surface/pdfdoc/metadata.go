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

package pdfdoc

import (
	"golang.org/x/text/language"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/invoice/surface"
)

// pdfNamespace is the XMP namespace for PDF properties.
type pdfNamespace struct {
	_        xmp.Namespace `xmp:"http://ns.adobe.com/pdf/1.3/"`
	_        xmp.Prefix    `xmp:"pdf"`
	Producer xmp.AgentName
}

// SetInfo implements the surface.Surface interface.
//
// The metadata is stored both in the document information dictionary and
// as an XMP packet attached to the document catalog.
func (s *Surface) SetInfo(info *surface.Info) {
	if s.closed {
		s.setErr(errClosed)
		return
	}
	if info == nil {
		return
	}

	meta := s.doc.Out.GetMeta()
	meta.Info = &pdf.Info{
		Title:    pdf.TextString(info.Title),
		Author:   pdf.TextString(info.Author),
		Subject:  pdf.TextString(info.Subject),
		Creator:  pdf.TextString(info.Creator),
		Producer: pdf.TextString(info.Producer),
	}

	ref, err := s.writeXMP(info)
	if err != nil {
		s.setErr(err)
		return
	}
	meta.Catalog.Metadata = ref
}

func (s *Surface) writeXMP(info *surface.Info) (pdf.Reference, error) {
	dc := &xmp.DublinCore{}
	if info.Title != "" {
		dc.Title.Set(language.MustParse("x-default"), info.Title)
	}
	if info.Author != "" {
		dc.Creator.Append(xmp.NewProperName(info.Author))
	}
	if info.Subject != "" {
		dc.Description.Set(language.MustParse("x-default"), info.Subject)
	}

	basic := &xmp.Basic{}
	if !info.Created.IsZero() {
		basic.CreateDate = xmp.NewDate(info.Created)
		basic.ModifyDate = xmp.NewDate(info.Created)
	}

	pdfInfo := &pdfNamespace{}
	if info.Producer != "" {
		pdfInfo.Producer = xmp.NewAgentName(info.Producer)
	}

	packet := xmp.NewPacket()
	packet.Set(dc, basic, pdfInfo)

	out := s.doc.Out
	ref := out.Alloc()
	stm, err := out.OpenStream(ref, pdf.Dict{
		"Type":    pdf.Name("Metadata"),
		"Subtype": pdf.Name("XML"),
	})
	if err != nil {
		return 0, err
	}
	err = packet.Write(stm, nil)
	if err != nil {
		return 0, err
	}
	err = stm.Close()
	if err != nil {
		return 0, err
	}
	return ref, nil
}
