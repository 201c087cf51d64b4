package service

import (
	"errors"
	"nextlevel_lms/internal/model"
	"nextlevel_lms/internal/util"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var expiryPattern = regexp.MustCompile(`^\d{2}/\d{2}$`)

type pagoMovilForm struct {
	Banco      string `json:"banco" validate:"required"`
	Telefono   string `json:"telefono" validate:"required,len=11"`
	Cedula     string `json:"cedula" validate:"required,min=7"`
	Referencia string `json:"referencia" validate:"required,min=4"`
}

type visaForm struct {
	NumeroTarjeta   string `json:"numeroTarjeta" validate:"required,len=16,number"`
	NombreTitular   string `json:"nombreTitular" validate:"required,min=3"`
	FechaExpiracion string `json:"fechaExpiracion" validate:"required,expiry"`
	CVV             string `json:"cvv" validate:"required,len=3,number"`
}

type transferenciaForm struct {
	BancoOrigen  string `json:"bancoOrigen" validate:"required"`
	BancoDestino string `json:"bancoDestino" validate:"required"`
	NumeroCuenta string `json:"numeroCuenta" validate:"required,len=20"`
	Cedula       string `json:"cedula" validate:"required,min=7"`
	Referencia   string `json:"referencia" validate:"required,min=4"`
}

type paypalForm struct {
	Email          string `json:"email" validate:"required,email"`
	NombreCompleto string `json:"nombreCompleto" validate:"required,min=3"`
}

var formMessages = map[string]string{
	"banco":           "Selecciona un banco",
	"telefono":        "Teléfono debe tener 11 dígitos",
	"cedula":          "Cédula inválida",
	"referencia":      "Referencia inválida",
	"numeroTarjeta":   "Número de tarjeta inválido",
	"nombreTitular":   "Nombre del titular requerido",
	"fechaExpiracion": "Formato MM/AA",
	"cvv":             "CVV debe tener 3 dígitos",
	"bancoOrigen":     "Selecciona banco origen",
	"bancoDestino":    "Selecciona banco destino",
	"numeroCuenta":    "Cuenta debe tener 20 dígitos",
	"email":           "Email inválido",
	"nombreCompleto":  "Nombre completo requerido",
}

func newFormValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("expiry", func(fl validator.FieldLevel) bool {
		return expiryPattern.MatchString(fl.Field().String())
	})
	return v
}

// PaymentForm is a validated payment form.
type PaymentForm struct {
	Method  model.PaymentMethod
	Details map[string]string
}

// Reference is the bank reference of pago-movil and transferencia payments.
func (f PaymentForm) Reference() string {
	switch f.Method {
	case model.MethodPagoMovil, model.MethodTransferencia:
		return f.Details["referencia"]
	}
	return ""
}

// Customer fills what the form tells about the payer; the rest is left for defaults.
func (f PaymentForm) Customer() model.CustomerInfo {
	var c model.CustomerInfo
	switch f.Method {
	case model.MethodPayPal:
		c.Name = f.Details["nombreCompleto"]
		c.Email = f.Details["email"]
	case model.MethodPagoMovil, model.MethodTransferencia:
		c.Identification = f.Details["cedula"]
	}
	return c
}

// Stored returns the details kept on the invoice. Card data is reduced to the last
// four digits and the CVV is dropped.
func (f PaymentForm) Stored() map[string]string {
	out := make(map[string]string, len(f.Details))
	for k, v := range f.Details {
		out[k] = v
	}
	if f.Method == model.MethodVisa {
		delete(out, "cvv")
		if n := out["numeroTarjeta"]; len(n) >= 4 {
			out["numeroTarjeta"] = "**** **** **** " + n[len(n)-4:]
		}
	}
	return out
}

// ValidatePaymentForm checks details against the rules of method. Field errors come
// back as one validation AppError whose Fields map field name to message.
func (s *CheckoutService) ValidatePaymentForm(method model.PaymentMethod, details map[string]string) (PaymentForm, error) {
	d := func(key string) string { return strings.TrimSpace(details[key]) }

	var form interface{}
	var normalized map[string]string
	switch method {
	case model.MethodPagoMovil:
		f := pagoMovilForm{Banco: d("banco"), Telefono: d("telefono"), Cedula: d("cedula"), Referencia: d("referencia")}
		form = f
		normalized = map[string]string{"banco": f.Banco, "telefono": f.Telefono, "cedula": f.Cedula, "referencia": f.Referencia}
	case model.MethodVisa:
		f := visaForm{
			NumeroTarjeta:   strings.Join(strings.Fields(details["numeroTarjeta"]), ""),
			NombreTitular:   d("nombreTitular"),
			FechaExpiracion: d("fechaExpiracion"),
			CVV:             d("cvv"),
		}
		form = f
		normalized = map[string]string{"numeroTarjeta": f.NumeroTarjeta, "nombreTitular": f.NombreTitular, "fechaExpiracion": f.FechaExpiracion, "cvv": f.CVV}
	case model.MethodTransferencia:
		f := transferenciaForm{BancoOrigen: d("bancoOrigen"), BancoDestino: d("bancoDestino"), NumeroCuenta: d("numeroCuenta"), Cedula: d("cedula"), Referencia: d("referencia")}
		form = f
		normalized = map[string]string{"bancoOrigen": f.BancoOrigen, "bancoDestino": f.BancoDestino, "numeroCuenta": f.NumeroCuenta, "cedula": f.Cedula, "referencia": f.Referencia}
	case model.MethodPayPal:
		f := paypalForm{Email: d("email"), NombreCompleto: d("nombreCompleto")}
		form = f
		normalized = map[string]string{"email": f.Email, "nombreCompleto": f.NombreCompleto}
	default:
		return PaymentForm{}, util.ErrInvalidPaymentMethod
	}

	if err := s.validate.Struct(form); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return PaymentForm{}, err
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[fe.Field()] = formMessages[fe.Field()]
		}
		return PaymentForm{}, util.NewValidationError("Revisa los datos del pago", fields)
	}

	return PaymentForm{Method: method, Details: normalized}, nil
}

// FormatCardNumber keeps the digits of value and groups them by four.
func FormatCardNumber(value string) string {
	var digits []rune
	for _, r := range value {
		if r >= '0' && r <= '9' {
			digits = append(digits, r)
		}
	}
	var b strings.Builder
	for i, r := range digits {
		if i > 0 && i%4 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
