package presenter

import (
	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/locale"
)

type Schedule struct {
	StartDate string `json:"start_date"`
	StartTime string `json:"start_time"`
	EndDate   string `json:"end_date"`
	EndTime   string `json:"end_time"`
	Duration  string `json:"duration"`
}

type ItemSection struct {
	Title    string `json:"title"`
	Label    string `json:"label"`
	Name     string `json:"name"`
	TypeName string `json:"type_name"`
}

type ApprovalSection struct {
	Title      string `json:"title"`
	ApprovedAt string `json:"approved_at"`
}

type RejectionSection struct {
	Title  string `json:"title"`
	Reason string `json:"reason"`
}

type BookingDetail struct {
	ID          string               `json:"id"`
	Status      domain.BookingStatus `json:"status"`
	Badge       Badge                `json:"badge"`
	Item        ItemSection          `json:"item"`
	Schedule    Schedule             `json:"schedule"`
	Purpose     string               `json:"purpose"`
	Notes       *string              `json:"notes,omitempty"`
	UserName    string               `json:"user_name"`
	SubmittedAt string               `json:"submitted_at"`
	Approval    *ApprovalSection     `json:"approval,omitempty"`
	Rejection   *RejectionSection    `json:"rejection,omitempty"`
}

// Detail собирает представление брони для окна "Detail Peminjaman".
func (f *Formatter) Detail(b *domain.Booking) BookingDetail {
	badge, _ := StatusBadge(b.Status)

	d := BookingDetail{
		ID:     b.ID,
		Status: b.Status,
		Badge:  badge,
		Item:   itemSection(b),
		Schedule: Schedule{
			StartDate: f.Format(b.StartDate, locale.LayoutDate),
			StartTime: f.Format(b.StartDate, locale.LayoutTime),
			EndDate:   f.Format(b.EndDate, locale.LayoutDate),
			EndTime:   f.Format(b.EndDate, locale.LayoutTime),
			Duration:  Duration(b.StartDate, b.EndDate),
		},
		Purpose:     b.Purpose,
		UserName:    b.UserName,
		SubmittedAt: f.Format(b.CreatedAt, locale.LayoutDateTime),
	}

	if b.Notes != "" {
		notes := b.Notes
		d.Notes = &notes
	}

	if b.Status == domain.BookingStatusApproved && b.ApprovedAt != nil {
		d.Approval = &ApprovalSection{
			Title:      "Peminjaman Disetujui",
			ApprovedAt: f.FormatPtr(b.ApprovedAt, locale.LayoutDateTime),
		}
	}

	if b.Status == domain.BookingStatusRejected && b.RejectionReason != "" {
		d.Rejection = &RejectionSection{
			Title:  "Peminjaman Ditolak",
			Reason: b.RejectionReason,
		}
	}

	return d
}

func itemSection(b *domain.Booking) ItemSection {
	if b.Type == domain.ItemTypeRoom {
		return ItemSection{Title: "Informasi Ruangan", Label: "Nama Ruangan", Name: b.ItemName, TypeName: "Ruangan"}
	}
	return ItemSection{Title: "Informasi Barang", Label: "Nama Barang", Name: b.ItemName, TypeName: "Barang"}
}
