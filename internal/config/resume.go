package config

type ResumeConfig struct {
	BasePDFPath string `json:"base_pdf_path"`
	OutputPath  string `json:"output_path"`
}

func (c *ResumeConfig) defaults() {
	c.BasePDFPath = orDefault(c.BasePDFPath, "base_resume.pdf")
	c.OutputPath = orDefault(c.OutputPath, "Tailored_CV.pdf")
}

type TrackerConfig struct {
	ExcelPath string `json:"excel_path"`
}

func (c *TrackerConfig) defaults() {
	c.ExcelPath = orDefault(c.ExcelPath, "applications.xlsx")
}
