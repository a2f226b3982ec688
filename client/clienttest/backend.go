// Package clienttest runs an in-memory LifeCare backend for tests.
package clienttest

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"LifeCarePortal/client"
	"LifeCarePortal/models"
)

const Secret = "clienttest-secret"

type failure struct {
	status  int
	message string
}

type user struct {
	name      string
	password  string
	role      string
	patientID string
}

type collection struct {
	order []string
	items map[string]map[string]interface{}
}

// Backend mimics the REST contract the portal depends on. Every route
// is counted so tests can assert that no request was made.
type Backend struct {
	Server *httptest.Server

	mu          sync.Mutex
	seq         int
	calls       int
	lastAuth    string
	omitToken   bool
	collections map[string]*collection
	users       map[string]user
	patients    map[string]map[string]interface{}
	records     map[string]string
	failures    map[string]failure
}

func New() *Backend {
	gin.SetMode(gin.TestMode)
	b := &Backend{
		collections: map[string]*collection{},
		users:       map[string]user{},
		patients:    map[string]map[string]interface{}{},
		records:     map[string]string{},
		failures:    map[string]failure{},
	}
	for _, path := range []string{client.ProvidersPath, client.AppointmentsPath, client.EnrollmentsPath, client.PaymentsPath, client.WellnessServicesPath} {
		b.collections[path] = &collection{items: map[string]map[string]interface{}{}}
	}

	r := gin.New()
	r.Use(b.track)
	r.GET("/", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })
	r.POST(client.RegisterPath, b.register)
	r.POST(client.LoginPath, b.login)
	r.POST(client.PatientRegister, b.registerPatient)
	r.POST(client.PatientLogin, b.loginPatient)
	r.GET(client.PatientsPath+"/:id", b.requireBearer, b.getPatient)
	r.PUT(client.PatientsPath+"/:id", b.requireBearer, b.updatePatient)
	r.GET(client.HealthRecordsPath+"/:id", b.requireBearer, b.getRecords)
	r.PUT(client.HealthRecordsPath+"/:id", b.requireBearer, b.updateRecords)
	for path := range b.collections {
		p := path
		r.GET(p, func(c *gin.Context) { b.list(c, p) })
		r.POST(p, func(c *gin.Context) { b.create(c, p) })
		r.PUT(p+"/:id", func(c *gin.Context) { b.update(c, p) })
		r.DELETE(p+"/:id", func(c *gin.Context) { b.remove(c, p) })
	}

	b.Server = httptest.NewServer(r)
	return b
}

func (b *Backend) URL() string {
	return b.Server.URL
}

func (b *Backend) Close() {
	b.Server.Close()
}

// Client answers a portal client pointed at this backend.
func (b *Backend) Client() *client.Client {
	return client.New(b.Server.URL, b.Server.Client())
}

func (b *Backend) Calls() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func (b *Backend) ResetCalls() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls = 0
}

// LastAuthorization is the Authorization header of the latest request.
func (b *Backend) LastAuthorization() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.lastAuth
}

// Fail makes every request matching method and route pattern (for
// example "PUT", "/providers/:id") answer status with message.
func (b *Backend) Fail(method, route string, status int, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+route] = failure{status: status, message: message}
}

func (b *Backend) ClearFailures() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = map[string]failure{}
}

// OmitToken makes both login endpoints answer 200 without a token.
func (b *Backend) OmitToken(omit bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.omitToken = omit
}

// Seed stores obj in the collection at path and answers its new id.
func (b *Backend) Seed(path string, obj map[string]interface{}) models.ID {
	b.mu.Lock()
	defer b.mu.Unlock()
	return models.ID(b.insert(path, obj))
}

// Items answers the stored objects of a collection in insertion order.
func (b *Backend) Items(path string) []map[string]interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	col := b.collections[path]
	out := make([]map[string]interface{}, 0, len(col.order))
	for _, id := range col.order {
		out = append(out, col.items[id])
	}
	return out
}

func (b *Backend) HealthRecord(patientID models.ID) string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.records[patientID.String()]
}

func (b *Backend) track(c *gin.Context) {
	b.mu.Lock()
	b.calls++
	b.lastAuth = c.GetHeader("Authorization")
	f, failing := b.failures[c.Request.Method+" "+c.FullPath()]
	b.mu.Unlock()

	if failing {
		if f.message == "" {
			c.AbortWithStatus(f.status)
			return
		}
		c.AbortWithStatusJSON(f.status, gin.H{"message": f.message})
		return
	}
	c.Next()
}

func (b *Backend) requireBearer(c *gin.Context) {
	if !strings.HasPrefix(c.GetHeader("Authorization"), "Bearer ") {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "missing token"})
		return
	}
	c.Next()
}

func (b *Backend) insert(path string, obj map[string]interface{}) string {
	b.seq++
	id := strconv.Itoa(b.seq)
	obj["id"] = b.seq
	col := b.collections[path]
	col.order = append(col.order, id)
	col.items[id] = obj
	return id
}

func (b *Backend) list(c *gin.Context, path string) {
	c.JSON(http.StatusOK, b.Items(path))
}

func (b *Backend) create(c *gin.Context, path string) {
	obj := map[string]interface{}{}
	if err := c.ShouldBindJSON(&obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	b.mu.Lock()
	b.insert(path, obj)
	b.mu.Unlock()
	c.JSON(http.StatusCreated, obj)
}

func (b *Backend) update(c *gin.Context, path string) {
	id := c.Param("id")
	obj := map[string]interface{}{}
	if err := c.ShouldBindJSON(&obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	col := b.collections[path]
	existing, ok := col.items[id]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}
	if _, sent := obj["password"]; !sent {
		if pw, had := existing["password"]; had {
			obj["password"] = pw
		}
	}
	obj["id"] = existing["id"]
	col.items[id] = obj
	c.JSON(http.StatusOK, obj)
}

func (b *Backend) remove(c *gin.Context, path string) {
	id := c.Param("id")
	b.mu.Lock()
	defer b.mu.Unlock()
	col := b.collections[path]
	if _, ok := col.items[id]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
		return
	}
	delete(col.items, id)
	for i, v := range col.order {
		if v == id {
			col.order = append(col.order[:i], col.order[i+1:]...)
			break
		}
	}
	c.Status(http.StatusNoContent)
}

func (b *Backend) issue(email, role, patientID string) string {
	claims := jwt.MapClaims{
		"sub":  email,
		"role": role,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(time.Hour).Unix(),
	}
	if patientID != "" {
		claims["patientId"] = patientID
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(Secret))
	if err != nil {
		panic(err)
	}
	return token
}

func (b *Backend) register(c *gin.Context) {
	var body models.Registration
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, taken := b.users[body.Email]; taken {
		c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
		return
	}
	b.users[body.Email] = user{name: body.Name, password: body.Password, role: string(body.Role)}
	c.JSON(http.StatusOK, gin.H{"message": "registered"})
}

func (b *Backend) login(c *gin.Context) {
	var body models.Credentials
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.users[body.Email]
	if !ok || u.password != body.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if b.omitToken {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": b.issue(body.Email, u.role, u.patientID)})
}

func (b *Backend) registerPatient(c *gin.Context) {
	var body models.PatientRegistration
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, taken := b.users[body.Email]; taken {
		c.JSON(http.StatusConflict, gin.H{"message": "Email already registered"})
		return
	}
	b.seq++
	id := strconv.Itoa(b.seq)
	b.patients[id] = map[string]interface{}{
		"id":      b.seq,
		"name":    body.Name,
		"email":   body.Email,
		"phone":   "",
		"address": "",
		"dob":     "",
	}
	b.records[id] = ""
	b.users[body.Email] = user{name: body.Name, password: body.Password, role: "PATIENT", patientID: id}
	c.JSON(http.StatusCreated, gin.H{"id": b.seq})
}

func (b *Backend) loginPatient(c *gin.Context) {
	var body models.Credentials
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.users[body.Email]
	if !ok || u.password != body.Password || u.patientID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	if b.omitToken {
		c.JSON(http.StatusOK, gin.H{"patientId": u.patientID})
		return
	}
	id, _ := strconv.Atoi(u.patientID)
	c.JSON(http.StatusOK, gin.H{"token": b.issue(body.Email, u.role, u.patientID), "patientId": id})
}

func (b *Backend) getPatient(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.patients[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "patient not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (b *Backend) updatePatient(c *gin.Context) {
	var body models.Patient
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.patients[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "patient not found"})
		return
	}
	p["name"] = body.Name
	p["email"] = body.Email
	p["phone"] = body.Phone
	p["address"] = body.Address
	p["dob"] = body.DOB
	c.JSON(http.StatusOK, p)
}

func (b *Backend) getRecords(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	rec, ok := b.records[c.Param("id")]
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "patient not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"records": rec})
}

func (b *Backend) updateRecords(c *gin.Context) {
	var body models.HealthRecord
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.records[c.Param("id")]; !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "patient not found"})
		return
	}
	b.records[c.Param("id")] = body.Records
	c.JSON(http.StatusOK, gin.H{"healthRecords": body.Records})
}
