package service

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	memberModel "jamaatku_backend/internals/features/members/member/model"
	promiseModel "jamaatku_backend/internals/features/chanda/promises/model"
)

/* ============================
   QUERY
============================ */

type ListFilter struct {
	Search string // nama / jamaat_id
	Role   string
	Gender string
	Musi   *bool
}

func ListMembers(db *gorm.DB, f ListFilter, limit, offset int) ([]memberModel.MemberModel, int64, error) {
	q := db.Model(&memberModel.MemberModel{})

	if s := strings.TrimSpace(f.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where(
			"LOWER(name) LIKE ? OR LOWER(surname) LIKE ? OR LOWER(jamaat_id) LIKE ?",
			like, like, like,
		)
	}
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if f.Gender != "" {
		q = q.Where("gender = ?", f.Gender)
	}
	if f.Musi != nil {
		q = q.Where("musi = ?", *f.Musi)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var members []memberModel.MemberModel
	if err := q.Order("surname ASC, name ASC").Limit(limit).Offset(offset).Find(&members).Error; err != nil {
		return nil, 0, err
	}
	return members, total, nil
}

func FindMemberByJamaatID(db *gorm.DB, jamaatID string) (*memberModel.MemberModel, error) {
	var m memberModel.MemberModel
	if err := db.Where("jamaat_id = ?", jamaatID).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

/* ============================
   DELETE CASCADE
============================ */

// DeleteMemberCascade menghapus payments → promises → member dalam satu
// transaksi. Urutan penting supaya tidak ada payment yatim.
func DeleteMemberCascade(db *gorm.DB, memberID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// 1) payments milik semua promise anggota
		if err := tx.
			Where("payment_promise_id IN (?)",
				tx.Model(&promiseModel.PromiseModel{}).
					Select("promise_id").
					Where("promise_user_id = ?", memberID),
			).
			Delete(&promiseModel.PaymentModel{}).Error; err != nil {
			return err
		}

		// 2) promises
		if err := tx.
			Where("promise_user_id = ?", memberID).
			Delete(&promiseModel.PromiseModel{}).Error; err != nil {
			return err
		}

		// 3) member
		res := tx.Where("id = ?", memberID).Delete(&memberModel.MemberModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}
