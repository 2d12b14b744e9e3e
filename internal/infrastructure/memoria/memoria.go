// Package memoria implementa los puertos de repositorio sobre mapas en
// memoria, con un TxRunner que simula commit/rollback por copia del almacén.
// Es el adaptador de los tests de casos de uso: mismo contrato que el
// adaptador Postgres, sin base de datos.
package memoria

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/scalimentos/inventario-api/internal/domain/entity"
	"github.com/scalimentos/inventario-api/internal/domain/repository"
)

// Almacen guarda el estado completo del sistema en memoria.
type Almacen struct {
	Productos   map[string]*entity.Producto
	Categorias  map[string]*entity.Categoria
	Lotes       map[string]*entity.LoteProduccion
	Stocks      map[string]*entity.Stock // clave: productoID
	Movimientos map[string]*entity.MovimientoInventario
	Ventas      map[string]*entity.Venta
	Pagos       map[string]*entity.Pago
	Alertas     map[string]*entity.Alerta
	Parametros  map[string]*entity.Parametro // clave: nombre
	Usuarios    map[string]*entity.Usuario
	Secuencias  map[string]int64
}

// NuevoAlmacen devuelve un almacén vacío listo para sembrar datos de test.
func NuevoAlmacen() *Almacen {
	return &Almacen{
		Productos:   map[string]*entity.Producto{},
		Categorias:  map[string]*entity.Categoria{},
		Lotes:       map[string]*entity.LoteProduccion{},
		Stocks:      map[string]*entity.Stock{},
		Movimientos: map[string]*entity.MovimientoInventario{},
		Ventas:      map[string]*entity.Venta{},
		Pagos:       map[string]*entity.Pago{},
		Alertas:     map[string]*entity.Alerta{},
		Parametros:  map[string]*entity.Parametro{},
		Usuarios:    map[string]*entity.Usuario{},
		Secuencias:  map[string]int64{},
	}
}

// clonar copia el almacén entero, entidad a entidad, para poder restaurarlo
// tras un rollback. Las entidades se copian por valor; los slices internos
// (líneas de venta, pagos aplicados) se duplican.
func (a *Almacen) clonar() *Almacen {
	c := NuevoAlmacen()
	for k, v := range a.Productos {
		cp := *v
		c.Productos[k] = &cp
	}
	for k, v := range a.Categorias {
		cp := *v
		c.Categorias[k] = &cp
	}
	for k, v := range a.Lotes {
		cp := *v
		c.Lotes[k] = &cp
	}
	for k, v := range a.Stocks {
		cp := *v
		c.Stocks[k] = &cp
	}
	for k, v := range a.Movimientos {
		cp := *v
		c.Movimientos[k] = &cp
	}
	for k, v := range a.Ventas {
		cp := *v
		cp.Productos = make([]entity.VentaProducto, len(v.Productos))
		for i, p := range v.Productos {
			pp := p
			pp.Lotes = append([]entity.AsignacionLote(nil), p.Lotes...)
			cp.Productos[i] = pp
		}
		c.Ventas[k] = &cp
	}
	for k, v := range a.Pagos {
		cp := *v
		cp.PagosAplicados = append([]entity.PagoAplicado(nil), v.PagosAplicados...)
		c.Pagos[k] = &cp
	}
	for k, v := range a.Alertas {
		cp := *v
		c.Alertas[k] = &cp
	}
	for k, v := range a.Parametros {
		cp := *v
		c.Parametros[k] = &cp
	}
	for k, v := range a.Usuarios {
		cp := *v
		c.Usuarios[k] = &cp
	}
	for k, v := range a.Secuencias {
		c.Secuencias[k] = v
	}
	return c
}

// restaurar vuelca el contenido de otro almacén sobre este, en el mismo sitio,
// para que los repositorios ya construidos sigan apuntando al estado correcto.
func (a *Almacen) restaurar(desde *Almacen) {
	a.Productos = desde.Productos
	a.Categorias = desde.Categorias
	a.Lotes = desde.Lotes
	a.Stocks = desde.Stocks
	a.Movimientos = desde.Movimientos
	a.Ventas = desde.Ventas
	a.Pagos = desde.Pagos
	a.Alertas = desde.Alertas
	a.Parametros = desde.Parametros
	a.Usuarios = desde.Usuarios
	a.Secuencias = desde.Secuencias
}

// Repos construye los repositorios atados a este almacén.
func (a *Almacen) Repos() *repository.Repos {
	return &repository.Repos{
		Productos:   &productoRepo{a},
		Categorias:  &categoriaRepo{a},
		Lotes:       &loteRepo{a},
		Stocks:      &stockRepo{a},
		Movimientos: &movimientoRepo{a},
		Ventas:      &ventaRepo{a},
		Pagos:       &pagoRepo{a},
		Alertas:     &alertaRepo{a},
		Parametros:  &parametroRepo{a},
		Usuarios:    &usuarioRepo{a},
		Secuencias:  &secuenciaRepo{a},
	}
}

// TxRunner simula la transacción: toma una copia del almacén antes de ejecutar
// fn y la restaura si fn falla, de modo que un error a mitad de secuencia deja
// el estado exactamente como estaba.
type TxRunner struct {
	Almacen *Almacen
}

var _ repository.TxRunner = (*TxRunner)(nil)

func (t *TxRunner) Run(ctx context.Context, fn func(r *repository.Repos) error) error {
	previo := t.Almacen.clonar()
	if err := fn(t.Almacen.Repos()); err != nil {
		t.Almacen.restaurar(previo)
		return err
	}
	return nil
}

// ── Productos ────────────────────────────────────────────────────────────────

type productoRepo struct{ a *Almacen }

func (r *productoRepo) Crear(p *entity.Producto) error {
	r.a.Productos[p.ID] = p
	return nil
}

func (r *productoRepo) ObtenerPorID(id string) (*entity.Producto, error) {
	return r.a.Productos[id], nil
}

func (r *productoRepo) ObtenerPorNombre(nombre string) (*entity.Producto, error) {
	for _, p := range r.a.Productos {
		if p.Nombre == nombre {
			return p, nil
		}
	}
	return nil, nil
}

func (r *productoRepo) Listar(limit, offset int) ([]*entity.Producto, error) {
	out := make([]*entity.Producto, 0, len(r.a.Productos))
	for _, p := range r.a.Productos {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return paginar(out, limit, offset), nil
}

func (r *productoRepo) Actualizar(p *entity.Producto) error {
	r.a.Productos[p.ID] = p
	return nil
}

func (r *productoRepo) Eliminar(id string) error {
	delete(r.a.Productos, id)
	return nil
}

// ── Categorías ───────────────────────────────────────────────────────────────

type categoriaRepo struct{ a *Almacen }

func (r *categoriaRepo) Crear(c *entity.Categoria) error {
	r.a.Categorias[c.ID] = c
	return nil
}

func (r *categoriaRepo) ObtenerPorID(id string) (*entity.Categoria, error) {
	return r.a.Categorias[id], nil
}

func (r *categoriaRepo) Listar() ([]*entity.Categoria, error) {
	out := make([]*entity.Categoria, 0, len(r.a.Categorias))
	for _, c := range r.a.Categorias {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *categoriaRepo) Eliminar(id string) error {
	delete(r.a.Categorias, id)
	return nil
}

// ── Lotes ────────────────────────────────────────────────────────────────────

type loteRepo struct{ a *Almacen }

func (r *loteRepo) Crear(l *entity.LoteProduccion) error {
	r.a.Lotes[l.ID] = l
	return nil
}

func (r *loteRepo) ObtenerPorID(id string) (*entity.LoteProduccion, error) {
	return r.a.Lotes[id], nil
}

func (r *loteRepo) ObtenerPorIDForUpdate(id string) (*entity.LoteProduccion, error) {
	return r.a.Lotes[id], nil
}

func (r *loteRepo) Actualizar(l *entity.LoteProduccion) error {
	r.a.Lotes[l.ID] = l
	return nil
}

func (r *loteRepo) Eliminar(id string) error {
	delete(r.a.Lotes, id)
	return nil
}

func (r *loteRepo) Listar(limit, offset int) ([]*entity.LoteProduccion, error) {
	out := make([]*entity.LoteProduccion, 0, len(r.a.Lotes))
	for _, l := range r.a.Lotes {
		out = append(out, l)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaProduccion.Before(out[j].FechaProduccion) })
	return paginar(out, limit, offset), nil
}

func (r *loteRepo) ListarPorProducto(productoID string) ([]*entity.LoteProduccion, error) {
	var out []*entity.LoteProduccion
	for _, l := range r.a.Lotes {
		if l.ProductoID == productoID {
			out = append(out, l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaProduccion.Before(out[j].FechaProduccion) })
	return out, nil
}

func (r *loteRepo) ListarProximosAVencer(desde, hasta time.Time) ([]*repository.LoteConProducto, error) {
	var out []*repository.LoteConProducto
	for _, l := range r.a.Lotes {
		if l.Estado != entity.LoteDisponible {
			continue
		}
		if l.FechaVencimiento.Before(desde) || l.FechaVencimiento.After(hasta) {
			continue
		}
		nombre := ""
		if p := r.a.Productos[l.ProductoID]; p != nil {
			nombre = p.Nombre
		}
		out = append(out, &repository.LoteConProducto{LoteProduccion: *l, NombreProducto: nombre})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaVencimiento.Before(out[j].FechaVencimiento) })
	return out, nil
}

func (r *loteRepo) ExistePorProducto(productoID string) (bool, error) {
	for _, l := range r.a.Lotes {
		if l.ProductoID == productoID {
			return true, nil
		}
	}
	return false, nil
}

// ── Stocks ───────────────────────────────────────────────────────────────────

type stockRepo struct{ a *Almacen }

func (r *stockRepo) Crear(s *entity.Stock) error {
	r.a.Stocks[s.ProductoID] = s
	return nil
}

func (r *stockRepo) ObtenerPorProducto(productoID string) (*entity.Stock, error) {
	return r.a.Stocks[productoID], nil
}

func (r *stockRepo) ObtenerPorProductoForUpdate(productoID string) (*entity.Stock, error) {
	return r.a.Stocks[productoID], nil
}

func (r *stockRepo) Actualizar(s *entity.Stock) error {
	r.a.Stocks[s.ProductoID] = s
	return nil
}

func (r *stockRepo) RecomputarDisponible(productoID string) error {
	s := r.a.Stocks[productoID]
	if s == nil {
		return nil
	}
	total := decimal.Zero
	for _, l := range r.a.Lotes {
		if l.ProductoID == productoID && l.Estado == entity.LoteDisponible {
			total = total.Add(l.CantidadDisponible)
		}
	}
	s.StockDisponible = total
	return nil
}

func (r *stockRepo) Listar() ([]*repository.StockConProducto, error) {
	var out []*repository.StockConProducto
	for _, s := range r.a.Stocks {
		nombre := ""
		if p := r.a.Productos[s.ProductoID]; p != nil {
			nombre = p.Nombre
		}
		out = append(out, &repository.StockConProducto{Stock: *s, NombreProducto: nombre})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].NombreProducto < out[j].NombreProducto })
	return out, nil
}

func (r *stockRepo) EliminarPorProducto(productoID string) error {
	delete(r.a.Stocks, productoID)
	return nil
}

// ── Movimientos ──────────────────────────────────────────────────────────────

type movimientoRepo struct{ a *Almacen }

func (r *movimientoRepo) Crear(m *entity.MovimientoInventario) error {
	r.a.Movimientos[m.ID] = m
	return nil
}

func (r *movimientoRepo) ObtenerPorID(id string) (*entity.MovimientoInventario, error) {
	return r.a.Movimientos[id], nil
}

func (r *movimientoRepo) Listar(desde, hasta *time.Time, limit, offset int) ([]*entity.MovimientoInventario, error) {
	var out []*entity.MovimientoInventario
	for _, m := range r.a.Movimientos {
		if desde != nil && m.FechaMovimiento.Before(*desde) {
			continue
		}
		if hasta != nil && m.FechaMovimiento.After(*hasta) {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaMovimiento.After(out[j].FechaMovimiento) })
	return paginar(out, limit, offset), nil
}

func (r *movimientoRepo) ListarPorProducto(productoID string, limit, offset int) ([]*entity.MovimientoInventario, error) {
	var out []*entity.MovimientoInventario
	for _, m := range r.a.Movimientos {
		if m.ProductoID == productoID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaMovimiento.After(out[j].FechaMovimiento) })
	return paginar(out, limit, offset), nil
}

func (r *movimientoRepo) Actualizar(m *entity.MovimientoInventario) error {
	r.a.Movimientos[m.ID] = m
	return nil
}

func (r *movimientoRepo) Eliminar(id string) error {
	delete(r.a.Movimientos, id)
	return nil
}

func (r *movimientoRepo) ExisteConsumoPorLote(loteID string) (bool, error) {
	for _, m := range r.a.Movimientos {
		if m.LoteID != loteID {
			continue
		}
		if m.TipoMovimiento == entity.MovimientoEntrada && m.Razon == entity.RazonProduccion {
			continue
		}
		return true, nil
	}
	return false, nil
}

func (r *movimientoRepo) ExistePorProducto(productoID string) (bool, error) {
	for _, m := range r.a.Movimientos {
		if m.ProductoID == productoID {
			return true, nil
		}
	}
	return false, nil
}

func (r *movimientoRepo) ExisteVentaPorProductos(productoIDs []string) (bool, error) {
	ids := make(map[string]bool, len(productoIDs))
	for _, id := range productoIDs {
		ids[id] = true
	}
	for _, m := range r.a.Movimientos {
		if m.Razon == entity.RazonVenta && ids[m.ProductoID] {
			return true, nil
		}
	}
	return false, nil
}

// ── Ventas y pagos ───────────────────────────────────────────────────────────

type ventaRepo struct{ a *Almacen }

func (r *ventaRepo) Crear(v *entity.Venta) error {
	r.a.Ventas[v.ID] = v
	return nil
}

func (r *ventaRepo) ObtenerPorID(id string) (*entity.Venta, error) {
	return r.a.Ventas[id], nil
}

func (r *ventaRepo) Listar(limit, offset int) ([]*entity.Venta, error) {
	out := make([]*entity.Venta, 0, len(r.a.Ventas))
	for _, v := range r.a.Ventas {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaVenta.After(out[j].FechaVenta) })
	return paginar(out, limit, offset), nil
}

func (r *ventaRepo) Actualizar(v *entity.Venta) error {
	r.a.Ventas[v.ID] = v
	return nil
}

func (r *ventaRepo) Eliminar(id string) error {
	delete(r.a.Ventas, id)
	return nil
}

func (r *ventaRepo) ListarPendientesPorCliente(clienteID string) ([]*entity.Venta, error) {
	var out []*entity.Venta
	for _, v := range r.a.Ventas {
		if v.ClienteID == clienteID && v.SaldoVenta.GreaterThan(decimal.Zero) && v.Estado != entity.VentaCancelada {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaVenta.Before(out[j].FechaVenta) })
	return out, nil
}

func (r *ventaRepo) ListarPendientesPorIDs(ids []string) ([]*entity.Venta, error) {
	quiere := make(map[string]bool, len(ids))
	for _, id := range ids {
		quiere[id] = true
	}
	var out []*entity.Venta
	for _, v := range r.a.Ventas {
		if quiere[v.ID] && v.SaldoVenta.GreaterThan(decimal.Zero) && v.Estado != entity.VentaCancelada {
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaVenta.Before(out[j].FechaVenta) })
	return out, nil
}

func (r *ventaRepo) ExisteConLote(loteID string) (bool, error) {
	for _, v := range r.a.Ventas {
		for _, p := range v.Productos {
			for _, l := range p.Lotes {
				if l.LoteID == loteID {
					return true, nil
				}
			}
		}
	}
	return false, nil
}

func (r *ventaRepo) ExisteConProducto(productoID string) (bool, error) {
	for _, v := range r.a.Ventas {
		for _, p := range v.Productos {
			if p.ProductoID == productoID {
				return true, nil
			}
		}
	}
	return false, nil
}

type pagoRepo struct{ a *Almacen }

func (r *pagoRepo) Crear(p *entity.Pago) error {
	r.a.Pagos[p.ID] = p
	return nil
}

func (r *pagoRepo) ListarPorCliente(clienteID string) ([]*entity.Pago, error) {
	var out []*entity.Pago
	for _, p := range r.a.Pagos {
		if p.ClienteID == clienteID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FechaPago.After(out[j].FechaPago) })
	return out, nil
}

// ── Alertas ──────────────────────────────────────────────────────────────────

type alertaRepo struct{ a *Almacen }

func (r *alertaRepo) Crear(al *entity.Alerta) error {
	r.a.Alertas[al.ID] = al
	return nil
}

func (r *alertaRepo) EliminarTodas() error {
	r.a.Alertas = map[string]*entity.Alerta{}
	return nil
}

func (r *alertaRepo) Listar() ([]*entity.Alerta, error) {
	out := make([]*entity.Alerta, 0, len(r.a.Alertas))
	for _, al := range r.a.Alertas {
		out = append(out, al)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Descripcion < out[j].Descripcion })
	return out, nil
}

func (r *alertaRepo) ObtenerPorID(id string) (*entity.Alerta, error) {
	return r.a.Alertas[id], nil
}

func (r *alertaRepo) ActualizarEstado(id, estado string) error {
	if al := r.a.Alertas[id]; al != nil {
		al.Estado = estado
	}
	return nil
}

// ── Parámetros ───────────────────────────────────────────────────────────────

type parametroRepo struct{ a *Almacen }

func (r *parametroRepo) Crear(p *entity.Parametro) error {
	r.a.Parametros[p.Nombre] = p
	return nil
}

func (r *parametroRepo) ObtenerPorNombre(nombre string) (*entity.Parametro, error) {
	return r.a.Parametros[nombre], nil
}

func (r *parametroRepo) ObtenerPorID(id string) (*entity.Parametro, error) {
	for _, p := range r.a.Parametros {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (r *parametroRepo) Listar() ([]*entity.Parametro, error) {
	out := make([]*entity.Parametro, 0, len(r.a.Parametros))
	for _, p := range r.a.Parametros {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nombre < out[j].Nombre })
	return out, nil
}

func (r *parametroRepo) Actualizar(p *entity.Parametro) error {
	r.a.Parametros[p.Nombre] = p
	return nil
}

// ── Usuarios ─────────────────────────────────────────────────────────────────

type usuarioRepo struct{ a *Almacen }

func (r *usuarioRepo) Crear(u *entity.Usuario) error {
	r.a.Usuarios[u.ID] = u
	return nil
}

func (r *usuarioRepo) ObtenerPorID(id string) (*entity.Usuario, error) {
	return r.a.Usuarios[id], nil
}

func (r *usuarioRepo) ObtenerPorEmail(email string) (*entity.Usuario, error) {
	for _, u := range r.a.Usuarios {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *usuarioRepo) Listar(limit, offset int) ([]*entity.Usuario, error) {
	out := make([]*entity.Usuario, 0, len(r.a.Usuarios))
	for _, u := range r.a.Usuarios {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return paginar(out, limit, offset), nil
}

// ── Secuencias ───────────────────────────────────────────────────────────────

type secuenciaRepo struct{ a *Almacen }

func (r *secuenciaRepo) Siguiente(nombre string) (int64, error) {
	r.a.Secuencias[nombre]++
	return r.a.Secuencias[nombre], nil
}

func paginar[T any](in []T, limit, offset int) []T {
	if offset >= len(in) {
		return nil
	}
	in = in[offset:]
	if limit > 0 && limit < len(in) {
		in = in[:limit]
	}
	return in
}
