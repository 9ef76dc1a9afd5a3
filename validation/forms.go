package validation

import (
	"github.com/ssugameworks/pajelingo/constants"
)

// Field 검증기가 연결된 폼 필드입니다
type Field struct {
	Name       string
	Validators []Validator
}

// Form 필드 묶음입니다
type Form struct {
	Name   string
	Fields []Field
}

// Event 필드에서 발생한 입력 이벤트입니다
type Event struct {
	Type  string `json:"type"`
	Field string `json:"field"`
}

// FieldNames 폼의 필드 이름 목록을 선언 순서대로 반환합니다
func (form *Form) FieldNames() []string {
	names := make([]string, 0, len(form.Fields))
	for _, field := range form.Fields {
		names = append(names, field.Name)
	}
	return names
}

// Snapshot 폼 전체 필드의 현재 값을 읽습니다
func (form *Form) Snapshot(source ValueSource) Snapshot {
	return NewSnapshot(source, form.FieldNames()...)
}

// HandleEvent focus 와 input 이벤트에 대해서만 해당 필드를 검증합니다.
// 다른 이벤트나 알 수 없는 필드는 false 를 반환합니다.
func (form *Form) HandleEvent(event Event, source ValueSource) (FieldState, bool) {
	if event.Type != constants.EventFocus && event.Type != constants.EventInput {
		return FieldState{}, false
	}

	for _, field := range form.Fields {
		if field.Name == event.Field {
			return RunValidators(form.Snapshot(source), field.Validators), true
		}
	}
	return FieldState{}, false
}

// ValidateAll 모든 필드를 같은 스냅샷으로 검증합니다
func (form *Form) ValidateAll(source ValueSource) map[string]FieldState {
	snapshot := form.Snapshot(source)
	states := make(map[string]FieldState, len(form.Fields))
	for _, field := range form.Fields {
		states[field.Name] = RunValidators(snapshot, field.Validators)
	}
	return states
}

// NewUserForm 회원가입과 계정 수정에서 쓰는 폼을 만듭니다
func NewUserForm(name string) *Form {
	return &Form{
		Name: name,
		Fields: []Field{
			{Name: constants.FieldEmail, Validators: EmailValidators(constants.FieldEmail)},
			{Name: constants.FieldUsername, Validators: UsernameValidators(constants.FieldUsername)},
			{Name: constants.FieldPassword, Validators: PasswordValidators(constants.FieldPassword)},
			{Name: constants.FieldConfirmPassword, Validators: ConfirmPasswordValidators(constants.FieldPassword, constants.FieldConfirmPassword)},
		},
	}
}

// NewLoginForm 로그인 폼. 두 필드 모두 필수 여부만 검사합니다
func NewLoginForm() *Form {
	return &Form{
		Name: constants.FormLogin,
		Fields: []Field{
			{Name: constants.FieldUsername, Validators: []Validator{Required(constants.FieldUsername)}},
			{Name: constants.FieldPassword, Validators: []Validator{Required(constants.FieldPassword)}},
		},
	}
}

// NewResetPasswordForm 비밀번호 재설정 폼
func NewResetPasswordForm() *Form {
	return &Form{
		Name: constants.FormResetPassword,
		Fields: []Field{
			{Name: constants.FieldPassword, Validators: PasswordValidators(constants.FieldPassword)},
			{Name: constants.FieldConfirmPassword, Validators: ConfirmPasswordValidators(constants.FieldPassword, constants.FieldConfirmPassword)},
		},
	}
}

// NewRequestResetPasswordForm 비밀번호 재설정 요청 폼
func NewRequestResetPasswordForm() *Form {
	return &Form{
		Name: constants.FormRequestResetPassword,
		Fields: []Field{
			{Name: constants.FieldEmail, Validators: EmailValidators(constants.FieldEmail)},
		},
	}
}

// Registry 이름으로 폼을 찾습니다
type Registry struct {
	forms map[string]*Form
}

// NewRegistry 알려진 모든 폼을 등록한 Registry 를 만듭니다
func NewRegistry() *Registry {
	registry := &Registry{forms: make(map[string]*Form)}
	for _, form := range []*Form{
		NewUserForm(constants.FormSignup),
		NewUserForm(constants.FormUpdateAccount),
		NewLoginForm(),
		NewResetPasswordForm(),
		NewRequestResetPasswordForm(),
	} {
		registry.forms[form.Name] = form
	}
	return registry
}

// Lookup 폼을 이름으로 조회합니다
func (registry *Registry) Lookup(name string) (*Form, bool) {
	form, ok := registry.forms[name]
	return form, ok
}
