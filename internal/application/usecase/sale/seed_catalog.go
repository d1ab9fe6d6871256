package sale

// catalogEntry lists the products sold under one category.
type catalogEntry struct {
	Category string
	Products []string
}

// seedCatalog is the fixed product catalogue used by the seed generator.
var seedCatalog = []catalogEntry{
	{
		Category: "Tecnología",
		Products: []string{
			"Monitor Gamer 144Hz", "Teclado Mecanico RGB", "Mouse Inalambrico",
			"Notebook Pro 15", "Auriculares Noise Cancelling", "Tablet Gráfica",
			"Smartwatch Series 5", "Camara DSLR", "Disco SSD 1TB", "Smartphone X",
		},
	},
	{
		Category: "Ropa",
		Products: []string{
			"Polera Estampada", "Jeans Slim Fit", "Zapatillas Running",
			"Chaqueta Impermeable", "Gorro de Lana", "Calcetines Deportivos",
			"Camisa Formal", "Vestido de Verano", "Shorts de Baño", "Sudadera con Capucha",
		},
	},
	{
		Category: "Hogar",
		Products: []string{
			"Lampara de Escritorio", "Juego de Sabanas", "Sarten Antiadherente",
			"Batidora de Mano", "Cafetera Express", "Almohada Viscoelástica",
			"Set de Cuchillos", "Toallas de Baño", "Espejo Decorativo", "Mesa Lateral",
		},
	},
	{
		Category: "Deportes",
		Products: []string{
			"Balon de Futbol", "Pesas 5kg", "Colchoneta Yoga",
			"Raqueta de Tenis", "Botella de Agua", "Bicicleta de Montaña",
			"Guantes de Boxeo", "Cuerda para Saltar", "Zapatillas Trekking", "Bandas Elasticas",
		},
	},
	{
		Category: "Juguetes",
		Products: []string{
			"Bloques de Construcción", "Muñeca Articulada", "Auto a Control Remoto",
			"Juego de Mesa", "Peluche Gigante", "Rompecabezas 1000 pz",
			"Set de Arte", "Dinosaurio de Goma", "Pistola de Agua", "Drone para Niños",
		},
	},
}

// seedRegions is the fixed region list used by the seed generator.
var seedRegions = []string{"Norte", "Sur", "Este", "Oeste", "Centro"}
