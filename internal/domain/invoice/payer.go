package invoice

import "qris/internal/utils"

var firstNames = []string{
	"Aaron", "Agus", "Ali", "Akihiro", "Aoki", "Airlangga", "Arman", "Armando",
	"Brian", "Bagas", "Bagus",
	"Cahyo", "Chandra",
	"Diki", "Dono", "Desi", "Dina", "Doni", "Deden",
	"Erlangga", "Estiana", "Esti", "Efra", "Estes", "Eihaku",
	"Fahmi", "Fikri", "Firanda", "Felando",
	"Gabriele", "Gadis", "Gatot", "Gesang",
	"Helmi", "Heri", "Heru", "Helsing",
	"Indah", "Intan", "Ilang",
	"Joko", "Jabar", "Jenteng", "Jaya", "Jhoyo", "Jetes",
	"Kembar", "Komi", "Kerala",
	"Lala", "Lambe", "Lina", "Lyani", "Lansya",
	"Mamake", "Monda", "Monte", "Masagu", "Mamte",
	"Ontende", "Orinda", "Osiga", "Ookami",
}

var lastNames = []string{
	"Azka", "Ashiko", "Adhi", "Alaihim",
	"Berputra", "Besar", "Batubara",
	"Chandrasiar", "Chokrobuana", "Cakrandibandiga",
	"Delanggu", "Derihian", "Desigintar",
	"Eiharo", "Ekanto", "Empubrahma",
	"Fahmianto", "Fikrianty", "Firmansyah", "Feskundo",
	"Gabimaskur", "Gadungis", "Guntot", "Gersang",
	"Hebring", "Hilmiah", "Herunda", "Herinsyah", "Halhala",
	"Imprintanti", "Ilangnihguys", "Intania",
	"Jabaryah", "Jantungan", "Jayapura", "Jetesindong", "Jokobodo",
	"Wi", "Kaito", "Widodo",
}

// PaymentMethods are the provider labels a simulated payer may use.
var PaymentMethods = []string{"ShopeePay", "LivinByMandiri", "Blu", "DANA", "LinkAja", "OVO", "GOPAY"}

// RandomCustomerName synthesizes "<first> <last>" from the fixed pools.
func RandomCustomerName() string {
	return utils.Pick(firstNames) + " " + utils.Pick(lastNames)
}

// RandomPaymentMethod picks one of PaymentMethods.
func RandomPaymentMethod() string {
	return utils.Pick(PaymentMethods)
}
