package service

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	entity "moteka/internal/domain"
	repo "moteka/internal/repository/postgresql"
)

type ReportService struct {
	orderRepo  repo.OrderRepository
	reportRepo repo.WorkReportRepository
}

func NewReportService(orderRepo repo.OrderRepository, reportRepo repo.WorkReportRepository) *ReportService {
	return &ReportService{orderRepo: orderRepo, reportRepo: reportRepo}
}

var exportHeaders = []string{
	"Orden", "Cliente", "Moto", "Modelo", "Mecánico", "Estado",
	"Ingreso", "Salida", "Notas", "Reportes de trabajo",
}

// ExportOrdersXLSX renders the filtered order list as a spreadsheet,
// one row per order with its technician reports folded into the last
// column.
func (s *ReportService) ExportOrdersXLSX(filter entity.OrderFilter) ([]byte, error) {
	orders, err := s.orderRepo.List(filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Ordenes"
	f.SetSheetName("Sheet1", sheet)

	for i, h := range exportHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, order := range orders {
		reports, err := s.reportRepo.ListByOrder(order.ID)
		if err != nil {
			return nil, err
		}

		values := []any{
			order.ID,
			clientName(&order),
			motoLabel(&order),
			modelLabel(&order),
			deref(order.AssignedMechanicName, "Sin asignar"),
			order.Status.Human(),
			order.IntakeAt.Format("02/01/2006 15:04"),
			exitLabel(&order),
			deref(order.Notes, ""),
			reportLines(reports),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// reportLines folds technician reports into one cell, newest last.
func reportLines(reports []entity.WorkReport) string {
	var b bytes.Buffer
	for i, rep := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		name := deref(rep.MechanicName, "Desconocido")
		fmt.Fprintf(&b, "[%s, %s] %s",
			rep.CreatedAt.Format("02/01/2006 15:04"), name, rep.Description)
	}
	return b.String()
}

func clientName(order *entity.WorkOrder) string {
	if order.Client != nil {
		return order.Client.Name
	}
	return ""
}

func motoLabel(order *entity.WorkOrder) string {
	if order.Motorcycle == nil {
		return ""
	}
	if order.Motorcycle.Plate != nil && *order.Motorcycle.Plate != "" {
		return *order.Motorcycle.Plate
	}
	return deref(order.Motorcycle.VIN, "")
}

func modelLabel(order *entity.WorkOrder) string {
	if order.Motorcycle == nil {
		return ""
	}
	label := ""
	if order.Motorcycle.BrandName != nil {
		label = *order.Motorcycle.BrandName
	}
	if order.Motorcycle.Model != nil {
		if label != "" {
			label += " "
		}
		label += order.Motorcycle.Model.Name
	}
	return label
}

func exitLabel(order *entity.WorkOrder) string {
	if order.ExitAt == nil {
		return ""
	}
	return order.ExitAt.Format("02/01/2006 15:04")
}

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
