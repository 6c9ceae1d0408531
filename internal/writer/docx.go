package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomutex/godocx"
)

// 宋体 is the conventional body font for Chinese documents.
const (
	bodyFont  = "SimSun"
	bodySize  = 12
	titleSize = 16
)

// WriteDocx writes the composed document text as a Word file, one docx
// paragraph per blank-line-separated paragraph, with a bold title line.
func WriteDocx(title, content, outputPath string) error {
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	doc, err := godocx.NewDocument()
	if err != nil {
		return fmt.Errorf("create document: %w", err)
	}

	titlePara := doc.AddParagraph("")
	titlePara.AddText(title).Font(bodyFont).Size(titleSize).Color("000000").Bold(true)
	doc.AddParagraph("")

	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		p := doc.AddParagraph("")
		p.AddText(para).Font(bodyFont).Size(bodySize).Color("000000")
	}

	if err := doc.SaveTo(outputPath); err != nil {
		return fmt.Errorf("save document: %w", err)
	}

	return nil
}
