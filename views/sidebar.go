package views

import "hikebook/constants"

// SidebarInfo là dữ liệu của mảnh partials/sidebar-info
type SidebarInfo struct {
	Mountain string
	Tips     []string
	Contact  string
}

func DefaultSidebar() SidebarInfo {
	return SidebarInfo{
		Mountain: "Gunung Gede Pangrango, 2.958 mdpl",
		Tips: []string{
			"Bawa jaket tebal, suhu puncak bisa di bawah 5°C",
			"Simpan sampah dan bawa turun kembali",
			"Lapor ke petugas basecamp sebelum dan sesudah mendaki",
			"Cek prakiraan cuaca sehari sebelum berangkat",
		},
		Contact: "0812-3456-7890 (Basecamp)",
	}
}

// RegisterDefaults gắn các mảnh mặc định của layout vào registry
func RegisterDefaults(reg *Registry) Handle {
	return reg.Register(constants.AreaSidebar, "partials/sidebar-info", DefaultSidebar())
}
