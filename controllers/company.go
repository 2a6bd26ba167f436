// controllers/company.go
package controllers

import (
	"encoding/json"
	"net/http"
	"os"
	"time"

	"consultpro-backend/utils"

	"github.com/gin-gonic/gin"
)

type registrySearchResponse struct {
	Results []struct {
		NomComplet string `json:"nom_complet"`
		Siren      string `json:"siren"`
		Siege      struct {
			Siret             string `json:"siret"`
			Adresse           string `json:"adresse"`
			ActivitePrincipal string `json:"activite_principale"`
		} `json:"siege"`
		EtatAdministratif string `json:"etat_administratif"`
	} `json:"results"`
}

func companyRegistryURL() string {
	url := os.Getenv("COMPANY_REGISTRY_URL")
	if url == "" {
		url = "https://recherche-entreprises.api.gouv.fr/search"
	}
	return url
}

// LookupCompany validates a SIRET and fetches the company record from the
// French registry
func LookupCompany(c *gin.Context) {
	siret := c.Param("siret")
	if !utils.ValidateSiret(siret) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid SIRET number")
		return
	}

	httpClient := &http.Client{Timeout: 10 * time.Second}
	resp, err := httpClient.Get(companyRegistryURL() + "?q=" + siret)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Company registry unavailable")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		utils.RespondWithError(c, http.StatusInternalServerError, "Company registry unavailable")
		return
	}

	var search registrySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&search); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to parse registry response")
		return
	}

	if len(search.Results) == 0 {
		utils.RespondWithError(c, http.StatusNotFound, "Company not found")
		return
	}

	company := search.Results[0]
	c.JSON(http.StatusOK, gin.H{
		"name":         company.NomComplet,
		"siren":        company.Siren,
		"siret":        siret,
		"address":      company.Siege.Adresse,
		"activityCode": company.Siege.ActivitePrincipal,
		"active":       company.EtatAdministratif == "A",
	})
}
